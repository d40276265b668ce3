package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

// DayActivityRow is an itinerary_activities row joined with its static
// activities metadata, enough to derive an end time.
type DayActivityRow struct {
	Latitude     float64
	Longitude    float64
	Location     string
	Activity     string
	ActivityDesc string
	Time         string
	Duration     int
}

type ItineraryRepository interface {
	GetDayActivities(ctx context.Context, day int) ([]DayActivityRow, error)
	GetItineraryByName(ctx context.Context, name string) (*db_models.Itinerary, error)
	ListActivitiesByItineraryID(ctx context.Context, itineraryID int) ([]db_models.ItineraryActivity, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) GetDayActivities(ctx context.Context, day int) ([]DayActivityRow, error) {
	var rows []DayActivityRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			activities.latitude,
			activities.longitude,
			itinerary_activities.location,
			itinerary_activities.activity,
			itinerary_activities.activity_desc,
			itinerary_activities.time,
			activities.duration
		FROM itinerary_activities
		INNER JOIN activities ON itinerary_activities.id = activities.id
		WHERE itinerary_activities.day = ?`, day).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *itineraryRepository) GetItineraryByName(ctx context.Context, name string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).First(&itinerary, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListActivitiesByItineraryID(ctx context.Context, itineraryID int) ([]db_models.ItineraryActivity, error) {
	var activities []db_models.ItineraryActivity
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("day, id").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
