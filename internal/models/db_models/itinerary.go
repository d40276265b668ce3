package db_models

// Itinerary is a pre-materialized plan identified by
// "<location>_<durationCode>_<tier>", e.g. "Montreal_5D4N_basic".
type Itinerary struct {
	ID             int `gorm:"primaryKey"`
	Name           string
	Location       string
	DurationDays   int
	DurationNights int
}

func (Itinerary) TableName() string { return "itineraries" }

// ItineraryActivity is one scheduled row of a curated itinerary. Time is a
// 12-hour clock string ("09:30 AM"); the end time is derived at read time
// from the matching activities row.
type ItineraryActivity struct {
	ID               int `gorm:"primaryKey"`
	ItineraryID      int
	Day              int
	Time             string
	Location         string
	Activity         string
	ActivityDesc     string
	Cuisine          string
	AvgCostPerPerson string
}

func (ItineraryActivity) TableName() string { return "itinerary_activities" }
