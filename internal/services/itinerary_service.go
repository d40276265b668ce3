package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

const (
	minPlanDay = 1
	maxPlanDay = 5
)

var planTiers = []string{"basic", "signature", "luxury"}

type ItineraryServiceInterface interface {
	GetDayPlan(ctx context.Context, day int) ([]response_models.ScheduledActivity, error)
	GetItineraryByName(ctx context.Context, location, duration, tier string) ([]response_models.ItineraryRow, error)
	ListTiers() []string
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{itineraryRepo: itineraryRepo}
}

func (s *ItineraryService) ListTiers() []string {
	return planTiers
}

// GetDayPlan reads one curated day and derives each entry's end time from
// the stored start time plus the activity duration. Stored times use a
// strict 12-hour clock; a malformed row is a data-integrity failure.
func (s *ItineraryService) GetDayPlan(ctx context.Context, day int) ([]response_models.ScheduledActivity, error) {
	if day < minPlanDay || day > maxPlanDay {
		return nil, utils.ErrInvalidInput
	}

	rows, err := s.itineraryRepo.GetDayActivities(ctx, day)
	if err != nil {
		log.Printf("Error loading day %d activities: %v", day, err)
		return nil, utils.ErrDatabaseError
	}

	type timedRow struct {
		start time.Time
		row   repositories.DayActivityRow
	}
	timed := make([]timedRow, 0, len(rows))
	for _, row := range rows {
		start, err := utils.ParseClock12(row.Time)
		if err != nil {
			return nil, fmt.Errorf("day %d row %q: %w", day, row.Location, err)
		}
		timed = append(timed, timedRow{start: start, row: row})
	}

	// Stored times are clock text; order them by parsed time, not lexically.
	sort.SliceStable(timed, func(i, j int) bool { return timed[i].start.Before(timed[j].start) })

	out := make([]response_models.ScheduledActivity, 0, len(timed))
	for _, tr := range timed {
		end := tr.start.Add(time.Duration(tr.row.Duration) * time.Minute)
		out = append(out, response_models.ScheduledActivity{
			Lat:          tr.row.Latitude,
			Lng:          tr.row.Longitude,
			Name:         tr.row.Location,
			Activity:     tr.row.Activity,
			ActivityDesc: tr.row.ActivityDesc,
			Time:         utils.FormatClock24(tr.start),
			EndTime:      utils.FormatClock12(end),
		})
	}
	return out, nil
}

// GetItineraryByName looks up a pre-materialized itinerary by its
// "<location>_<duration>_<tier>" name. An unknown tier yields an empty
// itinerary rather than an error.
func (s *ItineraryService) GetItineraryByName(ctx context.Context, location, duration, tier string) ([]response_models.ItineraryRow, error) {
	if location == "" || duration == "" {
		return nil, utils.ErrInvalidInput
	}
	if !validTier(tier) {
		return []response_models.ItineraryRow{}, nil
	}

	name := location + "_" + duration + "_" + tier
	itinerary, err := s.itineraryRepo.GetItineraryByName(ctx, name)
	if err != nil {
		log.Printf("Error loading itinerary %s: %v", name, err)
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return []response_models.ItineraryRow{}, nil
	}

	activities, err := s.itineraryRepo.ListActivitiesByItineraryID(ctx, itinerary.ID)
	if err != nil {
		log.Printf("Error loading itinerary %s activities: %v", name, err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryRow, 0, len(activities))
	for _, a := range activities {
		out = append(out, response_models.ItineraryRow{
			Day:              a.Day,
			Time:             a.Time,
			Location:         a.Location,
			Activity:         a.Activity,
			ActivityDesc:     a.ActivityDesc,
			Cuisine:          a.Cuisine,
			AvgCostPerPerson: a.AvgCostPerPerson,
		})
	}
	return out, nil
}

func validTier(tier string) bool {
	for _, t := range planTiers {
		if t == tier {
			return true
		}
	}
	return false
}
