package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voyago/internal/models/db_models"
)

type PlaceRepository interface {
	SavePlaces(ctx context.Context, places []db_models.Place) error
	LoadAllPlaces(ctx context.Context) ([]db_models.Place, error)
	SaveFetchedRegion(ctx context.Context, lat, lng, radiusM float64) error
	ListFetchedRegions(ctx context.Context) ([]db_models.FetchedRegion, error)
	DeletePlace(ctx context.Context, placeID string) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// SavePlaces upserts by place_id. Re-fetching a known place overwrites it;
// racing writers converge on the same row.
func (r *placeRepository) SavePlaces(ctx context.Context, places []db_models.Place) error {
	if len(places) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "place_id"}},
			UpdateAll: true,
		}).
		Create(&places).Error
}

func (r *placeRepository) LoadAllPlaces(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	if err := r.db.WithContext(ctx).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) SaveFetchedRegion(ctx context.Context, lat, lng, radiusM float64) error {
	region := db_models.FetchedRegion{
		Latitude:  lat,
		Longitude: lng,
		Radius:    radiusM,
	}
	return r.db.WithContext(ctx).Create(&region).Error
}

func (r *placeRepository) ListFetchedRegions(ctx context.Context) ([]db_models.FetchedRegion, error) {
	var regions []db_models.FetchedRegion
	if err := r.db.WithContext(ctx).Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *placeRepository) DeletePlace(ctx context.Context, placeID string) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Place{}, "place_id = ?", placeID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
