package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

func intptr(v int) *int { return &v }

func TestGenerateDayPlanFullPipeline(t *testing.T) {
	repo := newFakePlaceRepo()
	repo.places["r1"] = db_models.Place{
		PlaceID: "r1", Name: "Schwartz's", Latitude: 45.516, Longitude: -73.577,
		Category: "restaurant", PriceLevel: intptr(2),
	}
	repo.places["m1"] = db_models.Place{
		PlaceID: "m1", Name: "Pointe-à-Callière", Latitude: 45.503, Longitude: -73.554,
		Category: "museum",
	}
	repo.regions = append(repo.regions, db_models.FetchedRegion{Latitude: 45.5128, Longitude: -73.5460, Radius: 5000})

	placeService := NewPlaceService(repo, &fakeProvider{})
	planner := NewPlannerService(placeService, memcache.NewTravelTimeCache())

	plan, err := planner.GenerateDayPlan(context.Background(), request_models.DayPlanRequest{
		Location:      []float64{45.5128, -73.5460},
		HotelLocation: []float64{45.5110, -73.5598},
		Budget:        100,
		StartTime:     "2025-01-26 11:00",
		EndTime:       "2025-01-26 19:00",
		Radius:        5000,
		MaxTravelTime: 60,
	})
	require.NoError(t, err)
	require.Len(t, plan.Activities, 2)

	// Restaurant is held for the lunch window and lands first.
	assert.Equal(t, "Schwartz's", plan.Activities[0].Name)
	assert.Equal(t, "12:00", plan.Activities[0].Time)
	assert.Equal(t, "Pointe-à-Callière", plan.Activities[1].Name)
	assert.Equal(t, 25.0, plan.TotalCost)
}

func TestGenerateDayPlanExcludesVisitedPlaces(t *testing.T) {
	repo := newFakePlaceRepo()
	repo.places["m1"] = db_models.Place{
		PlaceID: "m1", Name: "Pointe-à-Callière", Latitude: 45.503, Longitude: -73.554,
		Category: "museum",
	}
	repo.regions = append(repo.regions, db_models.FetchedRegion{Latitude: 45.5128, Longitude: -73.5460, Radius: 5000})
	planner := NewPlannerService(NewPlaceService(repo, &fakeProvider{}), memcache.NewTravelTimeCache())

	plan, err := planner.GenerateDayPlan(context.Background(), request_models.DayPlanRequest{
		Location:         []float64{45.5128, -73.5460},
		HotelLocation:    []float64{45.5110, -73.5598},
		Budget:           100,
		StartTime:        "2025-01-26 09:00",
		EndTime:          "2025-01-26 19:00",
		VisitedLocations: []string{"m1"},
	})
	require.NoError(t, err)
	assert.Empty(t, plan.Activities)
}

func TestGenerateDayPlanValidatesRequest(t *testing.T) {
	planner := NewPlannerService(cachedPlaceService(), memcache.NewTravelTimeCache())

	_, err := planner.GenerateDayPlan(context.Background(), request_models.DayPlanRequest{
		Location:      []float64{45.5},
		HotelLocation: []float64{45.5, -73.5},
		StartTime:     "2025-01-26 09:00",
		EndTime:       "2025-01-26 19:00",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = planner.GenerateDayPlan(context.Background(), request_models.DayPlanRequest{
		Location:      []float64{45.5, -73.5},
		HotelLocation: []float64{45.5, -73.5},
		StartTime:     "2025-01-26 19:00",
		EndTime:       "2025-01-26 09:00",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = planner.GenerateDayPlan(context.Background(), request_models.DayPlanRequest{
		Location:      []float64{45.5, -73.5},
		HotelLocation: []float64{45.5, -73.5},
		StartTime:     "not a time",
		EndTime:       "2025-01-26 19:00",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
