package request_models

type GeneratePlanRequest struct {
	Day int `json:"day"`
}

// DayPlanRequest drives the live greedy planning pass for one day.
type DayPlanRequest struct {
	Location         []float64 `json:"location"`
	HotelLocation    []float64 `json:"hotel_location"`
	Budget           float64   `json:"budget"`
	StartTime        string    `json:"start_time"` // "2006-01-02 15:04"
	EndTime          string    `json:"end_time"`
	VisitedLocations []string  `json:"visited_locations"`
	PlannedLocations []string  `json:"planned_locations"`
	Radius           float64   `json:"radius"`          // meters
	MaxTravelTime    float64   `json:"max_travel_time"` // minutes from hotel
}

type ItineraryLookupRequest struct {
	Location string `json:"location" binding:"required"`
	Duration string `json:"duration" binding:"required"`
	Plan     string `json:"plan" binding:"required"`
}

type ExtractTripRequest struct {
	Query string `json:"query" binding:"required"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
