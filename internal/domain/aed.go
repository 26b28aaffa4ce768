package domain

// Aed is the canonical record for one defibrillator installation.
// Rows are created only by the refresh pipeline and destroyed only by the
// next full refresh; the report subsystem mutates the flag fields alone.
type Aed struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	LocationDetail   string  `json:"location_detail"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	PublicUse        bool    `json:"public_use"`
	AllowedOperators string  `json:"allowed_operators"`
	AccessPersons    string  `json:"access_persons"`
	Category         string  `json:"category"`
	ServiceHours     string  `json:"service_hours"`
	Brand            string  `json:"brand"`
	Model            string  `json:"model"`
	Remark           string  `json:"remark"`
	IsFlagged        bool    `json:"is_flagged"`
	FlagReason       *string `json:"flag_reason"`
	FlaggedAt        *string `json:"flagged_at"`
}

// AedDraft is a validated row produced by the ingest normalizer, before the
// storage layer assigns an id. The geo point is derived from Longitude and
// Latitude at insert time, in that order.
type AedDraft struct {
	Name             string
	Address          string
	LocationDetail   string
	Latitude         float64
	Longitude        float64
	PublicUse        bool
	AllowedOperators string
	AccessPersons    string
	Category         string
	ServiceHours     string
	Brand            string
	Model            string
	Remark           string
}

type AedWithDistance struct {
	Aed
	DistanceKm      float64 `json:"distance_km"`
	DistanceDisplay string  `json:"distance_display"`
}
