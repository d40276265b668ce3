package response_models

type Place struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Rating     *float64 `json:"rating"`
	PriceLevel *int     `json:"price_level"`
	Category   string   `json:"category"`
}
