package db_models

// Place is a cached point of interest keyed by the provider-assigned id.
// Rows are upserted on re-fetch, never duplicated; deletion only happens
// through the admin surface.
type Place struct {
	PlaceID    string `gorm:"primaryKey;column:place_id"`
	Name       string
	Latitude   float64
	Longitude  float64
	Rating     *float64
	PriceLevel *int
	Category   string
}

func (Place) TableName() string { return "places" }

// FetchedRegion records that a circular region has already been queried
// against the external provider. Append-only, no TTL.
type FetchedRegion struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	Latitude  float64
	Longitude float64
	Radius    float64 // meters
}

func (FetchedRegion) TableName() string { return "fetched_regions" }
