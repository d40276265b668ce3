package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// PromptPlanService is the prompt-based alternative to the greedy planner:
// it feeds the cached candidate places to a language model and asks for a
// JSON day plan. Same PlanGenerator capability, different strategy.
type PromptPlanService struct {
	placeService PlaceServiceInterface
	ai           utils.PlanPromptClientInterface
	extractor    utils.TripExtractorInterface
}

func NewPromptPlanService(
	placeService PlaceServiceInterface,
	ai utils.PlanPromptClientInterface,
	extractor utils.TripExtractorInterface,
) *PromptPlanService {
	return &PromptPlanService{
		placeService: placeService,
		ai:           ai,
		extractor:    extractor,
	}
}

func (s *PromptPlanService) GenerateDayPlan(ctx context.Context, req request_models.DayPlanRequest) (*response_models.DayPlan, error) {
	if len(req.Location) != 2 {
		return nil, utils.ErrInvalidInput
	}

	radiusM := req.Radius
	if radiusM <= 0 {
		radiusM = 3000
	}

	places, err := s.placeService.FetchActivities(ctx, req.Location[0], req.Location[1], radiusM)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return &response_models.DayPlan{Activities: []response_models.ScheduledActivity{}}, nil
	}

	raw, err := s.ai.GenerateJSON(ctx, buildDayPlanPrompt(req, places))
	if err != nil {
		log.Printf("Prompt plan generation failed: %v", err)
		return nil, err
	}

	var plan response_models.DayPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		log.Printf("Prompt plan returned malformed JSON: %v", err)
		return nil, utils.ErrAIUnavailable
	}
	if plan.Activities == nil {
		plan.Activities = []response_models.ScheduledActivity{}
	}
	return &plan, nil
}

// ExtractTrip turns a free-text query into a location and an XDYN duration
// code. The source occasionally answers "5/4" instead of "5D4N"; normalize.
func (s *PromptPlanService) ExtractTrip(ctx context.Context, query string) (response_models.TripExtraction, error) {
	if strings.TrimSpace(query) == "" {
		return response_models.TripExtraction{}, utils.ErrInvalidInput
	}

	extracted, err := s.extractor.ExtractTrip(ctx, query)
	if err != nil {
		return response_models.TripExtraction{}, err
	}

	duration := extracted.Duration
	if !strings.Contains(duration, "D") {
		parts := strings.SplitN(duration, "/", 2)
		if len(parts) == 2 {
			duration = parts[0] + "D" + parts[1] + "N"
		}
	}

	return response_models.TripExtraction{
		Location: extracted.Location,
		Duration: duration,
	}, nil
}

func buildDayPlanPrompt(req request_models.DayPlanRequest, places []response_models.Place) string {
	var b strings.Builder
	b.WriteString("Generate a one-day travel itinerary using ONLY the places listed below. ")
	b.WriteString("Include sightseeing and restaurant meals, minimizing travel time between stops.\n\n")
	fmt.Fprintf(&b, "Time window: %s to %s. Budget per person: %.0f.\n\nPlaces:\n", req.StartTime, req.EndTime, req.Budget)
	for _, p := range places {
		fmt.Fprintf(&b, "- %s (%s) at %.5f,%.5f\n", p.Name, p.Category, p.Lat, p.Lng)
	}
	b.WriteString(`
Return JSON with this exact shape:
{
  "activities": [
    {"lat": 0, "lng": 0, "name": "", "activity": "", "activity_desc": "", "time": "15:04", "end_time": "03:04 PM"}
  ],
  "total_cost": 0
}`)
	return b.String()
}
