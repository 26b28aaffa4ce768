package domain

type NearbyRequest struct {
	Lat        float64 `json:"lat" validate:"lat"`
	Lng        float64 `json:"lng" validate:"lng"`
	RadiusKm   float64 `json:"radius_km" validate:"radius_km"`
	Limit      int     `json:"limit" validate:"min=1,max=200"`
	PublicOnly bool    `json:"public_only"`
}

type ListAedsRequest struct {
	Offset int    `json:"offset" validate:"min=0"`
	Limit  int    `json:"limit" validate:"min=1,max=100"`
	SortBy string `json:"sort_by"`
	Order  string `json:"order"`
}

type Page struct {
	Total  int64   `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
	Next   *string `json:"next"`
	Prev   *string `json:"prev"`
}
