package request_models

type FetchPlacesRequest struct {
	Location []float64 `json:"location"`
	Query    string    `json:"query"`
	Radius   float64   `json:"radius"` // meters
}

type FetchActivitiesRequest struct {
	Location []float64 `json:"location"`
	Radius   float64   `json:"radius"` // meters
}
