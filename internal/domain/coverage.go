package domain

type CoverageRequest struct {
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	RadiusKm float64 `json:"radius_km" validate:"radius_km"`
}

type DistanceStats struct {
	MinKm *float64 `json:"min_distance_km"`
	MaxKm *float64 `json:"max_distance_km"`
	AvgKm *float64 `json:"avg_distance_km"`
}

// CoverageReport summarizes AED density within a circular search area.
// Area uses the planar pi*r^2 approximation.
type CoverageReport struct {
	Lat          float64       `json:"latitude"`
	Lng          float64       `json:"longitude"`
	RadiusKm     float64       `json:"radius_km"`
	AreaSqKm     float64       `json:"area_sq_km"`
	AedCount     int64         `json:"aed_count"`
	PublicAeds   int64         `json:"public_aeds"`
	PrivateAeds  int64         `json:"private_aeds"`
	DensityPerKm float64       `json:"aeds_per_sq_km"`
	Rating       string        `json:"rating"`
	Distance     DistanceStats `json:"distance_stats"`
}
