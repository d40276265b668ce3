package db_models

// Activity is static scheduling metadata for a curated location: how long a
// visit takes, what it costs, where it is. Read-only input to planning.
type Activity struct {
	ID               int `gorm:"primaryKey"`
	Name             string
	City             string
	Address          string
	Latitude         float64
	Longitude        float64
	AvgCostPerPerson int
	Duration         int // minutes
	ServiceType      string
	Info             string
}

func (Activity) TableName() string { return "activities" }
