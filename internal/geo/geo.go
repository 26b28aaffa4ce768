package geo

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle ground distance in kilometers between
// two (lat,lng) points using the haversine formula over a spherical earth.
// The storage layer computes the authoritative geodesic distance with
// PostGIS; this must stay close enough to it that radius filtering and
// ordering agree.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FormatDistance renders a distance for display: below 1 km as whole meters
// truncated toward zero ("~432 m"), otherwise as kilometers with one decimal
// ("~2.5 km").
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("~%d m", int(km*1000))
	}
	return fmt.Sprintf("~%.1f km", km)
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
