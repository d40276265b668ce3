package response_models

// ScheduledActivity is one entry of a day itinerary. Time is 24-hour,
// EndTime keeps the curated 12-hour rendering.
type ScheduledActivity struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Name         string  `json:"name"`
	Activity     string  `json:"activity"`
	ActivityDesc string  `json:"activity_desc"`
	Time         string  `json:"time"`
	EndTime      string  `json:"end_time"`
}

type DayPlan struct {
	Activities []ScheduledActivity `json:"activities"`
	TotalCost  float64             `json:"total_cost"`
}

// ItineraryRow mirrors a stored itinerary_activities row for the
// pre-materialized lookup path.
type ItineraryRow struct {
	Day              int    `json:"day"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	Activity         string `json:"activity"`
	ActivityDesc     string `json:"activity_desc"`
	Cuisine          string `json:"cuisine"`
	AvgCostPerPerson string `json:"avg_cost_per_person"`
}

type TripExtraction struct {
	Location string `json:"location"`
	Duration string `json:"duration"`
}
