package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/pkg/memcache"
)

func fptr(v float64) *float64 { return &v }

func mkCand(id string, cat Category, cost float64, durMin int, lat, lng float64) Candidate {
	return Candidate{
		PlaceID:         id,
		Name:            id,
		Lat:             lat,
		Lng:             lng,
		Category:        cat,
		CostPerPerson:   fptr(cost),
		DurationMinutes: durMin,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 26, hour, minute, 0, 0, time.UTC)
}

func newTestPlanner() *PlannerService {
	return NewPlannerService(nil, memcache.NewTravelTimeCache())
}

func TestFilterCandidatesExcludesVisitedAndPlanned(t *testing.T) {
	cands := []Candidate{
		mkCand("a", CategoryMuseum, 10, 60, 45.50, -73.56),
		mkCand("b", CategoryRestaurant, 10, 60, 45.50, -73.56),
		mkCand("c", CategoryOther, 10, 60, 45.50, -73.56),
	}
	visited := map[string]struct{}{"a": {}}
	planned := map[string]struct{}{"b": {}}

	out := FilterCandidates(cands, visited, planned, 100, 45.50, -73.56, 5)
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].PlaceID)
}

func TestFilterCandidatesCostCeiling(t *testing.T) {
	cheap := mkCand("cheap", CategoryOther, 20, 60, 45.50, -73.56)
	pricey := mkCand("pricey", CategoryOther, 200, 60, 45.50, -73.56)
	unknown := mkCand("unknown", CategoryOther, 0, 60, 45.50, -73.56)
	unknown.CostPerPerson = nil

	out := FilterCandidates([]Candidate{cheap, pricey, unknown}, nil, nil, 50, 45.50, -73.56, 5)
	require.Len(t, out, 2)
	assert.Equal(t, "cheap", out[0].PlaceID)
	// Unknown cost is admissible.
	assert.Equal(t, "unknown", out[1].PlaceID)
}

func TestFilterCandidatesRadiusZeroKeepsOnlyCenterPoint(t *testing.T) {
	center := mkCand("center", CategoryOther, 10, 60, 45.50, -73.56)
	near := mkCand("near", CategoryOther, 10, 60, 45.5001, -73.56)

	out := FilterCandidates([]Candidate{center, near}, nil, nil, 100, 45.50, -73.56, 0)
	require.Len(t, out, 1)
	assert.Equal(t, "center", out[0].PlaceID)
}

func TestFilterCandidatesPreservesOrder(t *testing.T) {
	cands := []Candidate{
		mkCand("z", CategoryOther, 10, 60, 45.50, -73.56),
		mkCand("a", CategoryOther, 10, 60, 45.50, -73.56),
		mkCand("m", CategoryOther, 10, 60, 45.50, -73.56),
	}
	out := FilterCandidates(cands, nil, nil, 100, 45.50, -73.56, 5)
	require.Len(t, out, 3)
	assert.Equal(t, "z", out[0].PlaceID)
	assert.Equal(t, "a", out[1].PlaceID)
	assert.Equal(t, "m", out[2].PlaceID)
}

func TestFilterByTravelTime(t *testing.T) {
	near := mkCand("near", CategoryOther, 10, 60, 45.51, -73.56)
	far := mkCand("far", CategoryOther, 10, 60, 46.80, -71.21) // Quebec City

	out := FilterByTravelTime([]Candidate{near, far}, 45.50, -73.56, 60)
	require.Len(t, out, 1)
	assert.Equal(t, "near", out[0].PlaceID)
}

func TestFilterByTravelTimeEmptyIsNotAnError(t *testing.T) {
	far := mkCand("far", CategoryOther, 10, 60, 46.80, -71.21)
	out := FilterByTravelTime([]Candidate{far}, 45.50, -73.56, 10)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCountMealSlots(t *testing.T) {
	windows := DefaultMealWindows()

	// 11:00-19:00 holds a full lunch window but dinner runs past the end.
	counts := CountMealSlots(at(11, 0), at(19, 0), windows)
	assert.Equal(t, 1, counts["lunch"])
	assert.Equal(t, 0, counts["dinner"])

	// 10:00-22:00 holds both.
	counts = CountMealSlots(at(10, 0), at(22, 0), windows)
	assert.Equal(t, 1, counts["lunch"])
	assert.Equal(t, 1, counts["dinner"])

	// 12:30 start cuts into lunch; only dinner counts.
	counts = CountMealSlots(at(12, 30), at(22, 0), windows)
	assert.Equal(t, 0, counts["lunch"])
	assert.Equal(t, 1, counts["dinner"])
}

func TestPlanDayLunchScenario(t *testing.T) {
	r1 := mkCand("r1", CategoryRestaurant, 20, 60, 45.50, -73.56)
	m1 := mkCand("m1", CategoryMuseum, 15, 90, 45.51, -73.57)

	planner := newTestPlanner()
	windows := DefaultMealWindows()
	start, end := at(11, 0), at(19, 0)
	slots := CountMealSlots(start, end, windows)

	stops := planner.PlanDay([]Candidate{r1, m1}, 45.5110, -73.5598, start, end, 100, slots, windows)
	require.Len(t, stops, 2)

	// The restaurant is held back for the lunch window and scheduled first.
	assert.Equal(t, "r1", stops[0].PlaceID)
	lunchStart, lunchEnd := at(12, 0), at(14, 0)
	assert.False(t, stops[0].Start.Before(lunchStart))
	assert.True(t, stops[0].Start.Before(lunchEnd))

	assert.Equal(t, "m1", stops[1].PlaceID)
	assert.True(t, stops[0].End.Before(stops[1].Start) || stops[0].End.Equal(stops[1].Start))

	total := 0.0
	for _, s := range stops {
		total += *s.CostPerPerson
	}
	assert.Equal(t, 35.0, total)
	assert.LessOrEqual(t, total, 100.0)
}

func TestPlanDayNeverExceedsBudget(t *testing.T) {
	cands := []Candidate{
		mkCand("a", CategoryOther, 40, 30, 45.50, -73.56),
		mkCand("b", CategoryOther, 40, 30, 45.501, -73.56),
		mkCand("c", CategoryOther, 40, 30, 45.502, -73.56),
		mkCand("d", CategoryOther, 40, 30, 45.503, -73.56),
	}

	planner := newTestPlanner()
	stops := planner.PlanDay(cands, 45.50, -73.56, at(9, 0), at(20, 0), 100, nil, nil)

	total := 0.0
	for _, s := range stops {
		total += *s.CostPerPerson
	}
	assert.LessOrEqual(t, total, 100.0)
	assert.Len(t, stops, 2)
}

func TestPlanDayNeverOverlapsActivities(t *testing.T) {
	var cands []Candidate
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		cands = append(cands, mkCand(id, CategoryOther, 5, 45, 45.50, -73.56))
	}

	planner := newTestPlanner()
	windows := DefaultMealWindows()
	start, end := at(9, 0), at(21, 0)
	stops := planner.PlanDay(cands, 45.51, -73.55, start, end, 1000, CountMealSlots(start, end, windows), windows)
	require.NotEmpty(t, stops)

	for i := 1; i < len(stops); i++ {
		assert.False(t, stops[i].Start.Before(stops[i-1].End),
			"activity %d overlaps activity %d", i, i-1)
	}
	for _, s := range stops {
		assert.False(t, s.End.After(end))
		assert.False(t, s.Start.Before(start))
	}
}

func TestPlanDayEmptyCandidatesYieldsEmptyDay(t *testing.T) {
	planner := newTestPlanner()
	stops := planner.PlanDay(nil, 45.50, -73.56, at(9, 0), at(19, 0), 100, nil, nil)
	assert.NotNil(t, stops)
	assert.Empty(t, stops)
}

func TestPlanDayTieBreaksByRatingThenName(t *testing.T) {
	// Identical coordinates and durations; rating then name decides.
	lowRated := mkCand("alpha", CategoryOther, 10, 60, 45.50, -73.56)
	lowRated.Rating = fptr(3.5)
	highRated := mkCand("zeta", CategoryOther, 10, 60, 45.50, -73.56)
	highRated.Rating = fptr(4.8)

	planner := newTestPlanner()
	stops := planner.PlanDay([]Candidate{lowRated, highRated}, 45.50, -73.56, at(9, 0), at(12, 0), 100, nil, nil)
	require.Len(t, stops, 2)
	assert.Equal(t, "zeta", stops[0].PlaceID)

	// Equal ratings fall back to lexicographic name order.
	a := mkCand("aaa", CategoryOther, 10, 60, 45.50, -73.56)
	b := mkCand("bbb", CategoryOther, 10, 60, 45.50, -73.56)
	stops = planner.PlanDay([]Candidate{b, a}, 45.50, -73.56, at(9, 0), at(12, 0), 100, nil, nil)
	require.Len(t, stops, 2)
	assert.Equal(t, "aaa", stops[0].PlaceID)
}

func TestPlanDayReleasesMealSlotWithoutRestaurants(t *testing.T) {
	m1 := mkCand("m1", CategoryMuseum, 15, 90, 45.50, -73.56)

	planner := newTestPlanner()
	windows := DefaultMealWindows()
	start, end := at(12, 30), at(19, 0)
	slots := map[string]int{"lunch": 1, "dinner": 0}

	stops := planner.PlanDay([]Candidate{m1}, 45.50, -73.56, start, end, 100, slots, windows)
	require.Len(t, stops, 1)
	assert.Equal(t, "m1", stops[0].PlaceID)
}
