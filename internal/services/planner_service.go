package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

// Candidate is a place that passed filtering, enriched with the scheduling
// metadata the greedy pass needs. Read-only: the planner selects and orders,
// it never mutates.
type Candidate struct {
	PlaceID         string
	Name            string
	Lat             float64
	Lng             float64
	Rating          *float64
	Category        Category
	CostPerPerson   *float64 // nil means unknown, treated as admissible
	DurationMinutes int
}

// MealWindow is a fixed daily clock window, in minutes of day.
type MealWindow struct {
	Name        string
	StartMinute int
	EndMinute   int
}

func DefaultMealWindows() []MealWindow {
	return []MealWindow{
		{Name: "lunch", StartMinute: 12 * 60, EndMinute: 14 * 60},
		{Name: "dinner", StartMinute: 18 * 60, EndMinute: 21 * 60},
	}
}

// ScheduledStop is one selected activity with its concrete time slot.
type ScheduledStop struct {
	Candidate
	Start time.Time
	End   time.Time
}

// FilterCandidates drops candidates that are already visited or planned,
// cost more than the ceiling (unknown cost passes), or sit outside the
// bounding radius. Input order is preserved; no deduplication here, the
// store already keys by place_id.
func FilterCandidates(
	cands []Candidate,
	visited, planned map[string]struct{},
	maxCostPerPerson float64,
	centerLat, centerLng, radiusKm float64,
) []Candidate {
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if _, ok := visited[c.PlaceID]; ok {
			continue
		}
		if _, ok := planned[c.PlaceID]; ok {
			continue
		}
		if _, ok := visited[c.Name]; ok {
			continue
		}
		if _, ok := planned[c.Name]; ok {
			continue
		}
		if c.CostPerPerson != nil && *c.CostPerPerson > maxCostPerPerson {
			continue
		}
		if utils.HaversineDistanceKm(centerLat, centerLng, c.Lat, c.Lng) > radiusKm {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterByTravelTime keeps candidates reachable from the reference point
// within maxMinutes. An empty result is valid; the caller decides whether
// empty is terminal.
func FilterByTravelTime(cands []Candidate, refLat, refLng, maxMinutes float64) []Candidate {
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		distKm := utils.HaversineDistanceKm(refLat, refLng, c.Lat, c.Lng)
		if utils.EstimateTravelTimeMinutes(distKm) <= maxMinutes {
			out = append(out, c)
		}
	}
	return out
}

// CountMealSlots counts, per named window, how many full occurrences fall
// inside [windowStart, windowEnd).
func CountMealSlots(windowStart, windowEnd time.Time, windows []MealWindow) map[string]int {
	counts := make(map[string]int, len(windows))
	for _, w := range windows {
		counts[w.Name] = 0
	}

	day := time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(), 0, 0, 0, 0, windowStart.Location())
	for !day.After(windowEnd) {
		for _, w := range windows {
			occStart := day.Add(time.Duration(w.StartMinute) * time.Minute)
			occEnd := day.Add(time.Duration(w.EndMinute) * time.Minute)
			if !occStart.Before(windowStart) && !occEnd.After(windowEnd) {
				counts[w.Name]++
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return counts
}

// PlannerService is the greedy day scheduler. State is local to one PlanDay
// call; the service itself holds only the shared travel-leg cache and is
// safe for concurrent use.
type PlannerService struct {
	placeService PlaceServiceInterface
	travelCache  *memcache.TravelTimeCache
}

// PlanGenerator produces a day itinerary for a request. The greedy planner
// is the default strategy; a prompt-based generator implements the same
// capability.
type PlanGenerator interface {
	GenerateDayPlan(ctx context.Context, req request_models.DayPlanRequest) (*response_models.DayPlan, error)
}

func NewPlannerService(placeService PlaceServiceInterface, travelCache *memcache.TravelTimeCache) *PlannerService {
	return &PlannerService{
		placeService: placeService,
		travelCache:  travelCache,
	}
}

// GenerateDayPlan runs the full pipeline: fetch (cache-first), filter by
// exclusions/cost/radius, filter by travel time from the hotel, reserve meal
// slots, then greedily schedule. An empty plan is a valid outcome, never an
// error.
func (s *PlannerService) GenerateDayPlan(ctx context.Context, req request_models.DayPlanRequest) (*response_models.DayPlan, error) {
	if len(req.Location) != 2 || len(req.HotelLocation) != 2 {
		return nil, utils.ErrInvalidInput
	}
	start, err := utils.ParseDateTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDateTime(req.EndTime)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, utils.ErrInvalidInput
	}

	radiusM := req.Radius
	if radiusM <= 0 {
		radiusM = 3000
	}
	maxTravel := req.MaxTravelTime
	if maxTravel <= 0 {
		maxTravel = 60
	}

	places, err := s.placeService.FetchActivities(ctx, req.Location[0], req.Location[1], radiusM)
	if err != nil {
		return nil, err
	}

	cands := make([]Candidate, 0, len(places))
	for _, p := range places {
		cands = append(cands, candidateFromPlace(p))
	}

	visited := toSet(req.VisitedLocations)
	planned := toSet(req.PlannedLocations)
	cands = FilterCandidates(cands, visited, planned, req.Budget,
		req.Location[0], req.Location[1], radiusM/1000)
	cands = FilterByTravelTime(cands, req.HotelLocation[0], req.HotelLocation[1], maxTravel)

	windows := DefaultMealWindows()
	slots := CountMealSlots(start, end, windows)

	stops := s.PlanDay(cands, req.HotelLocation[0], req.HotelLocation[1], start, end, req.Budget, slots, windows)

	plan := &response_models.DayPlan{Activities: make([]response_models.ScheduledActivity, 0, len(stops))}
	for _, stop := range stops {
		if stop.CostPerPerson != nil {
			plan.TotalCost += *stop.CostPerPerson
		}
		plan.Activities = append(plan.Activities, response_models.ScheduledActivity{
			Lat:          stop.Lat,
			Lng:          stop.Lng,
			Name:         stop.Name,
			Activity:     string(stop.Category),
			ActivityDesc: stop.Name,
			Time:         utils.FormatClock24(stop.Start),
			EndTime:      utils.FormatClock12(stop.End),
		})
	}
	return plan, nil
}

// PlanDay is the greedy single-pass scheduler. Restaurants are reserved for
// meal windows while unreserved windows remain; outside meal windows the
// closest candidate wins, tie-broken by rating then name. The cursor
// advances by activity duration plus the estimated travel leg to the
// selection.
func (s *PlannerService) PlanDay(
	cands []Candidate,
	hotelLat, hotelLng float64,
	start, end time.Time,
	budget float64,
	mealSlots map[string]int,
	windows []MealWindow,
) []ScheduledStop {
	slots := make(map[string]int, len(mealSlots))
	for name, n := range mealSlots {
		slots[name] = n
	}

	var scheduled []ScheduledStop
	used := make(map[string]bool, len(cands))
	cur := start
	remaining := budget
	// The hotel key carries its coordinates: cached legs must not leak
	// between requests with different hotels.
	lastID := fmt.Sprintf("hotel@%.5f,%.5f", hotelLat, hotelLng)
	lastLat, lastLng := hotelLat, hotelLng

	for cur.Before(end) {
		if w, ok := activeMealWindow(cur, windows, slots); ok {
			pick, found := s.pickBest(cands, used, cur, end, remaining, lastID, lastLat, lastLng, restaurantsOnly)
			if !found {
				// No restaurant fits this window; release it so sightseeing
				// can continue.
				slots[w.Name] = 0
				continue
			}
			stop, nextCur := s.schedule(pick, cur, lastID, lastLat, lastLng)
			scheduled = append(scheduled, stop)
			used[pick.PlaceID] = true
			remaining -= costOf(pick)
			slots[w.Name]--
			cur = nextCur
			lastID, lastLat, lastLng = pick.PlaceID, pick.Lat, pick.Lng
			continue
		}

		reserveRestaurants := anySlotPending(slots) && anyUnusedRestaurant(cands, used)
		blockBefore, hasBlock := nextPendingWindowStart(cur, windows, slots)

		pick, found := s.pickBest(cands, used, cur, end, remaining, lastID, lastLat, lastLng,
			func(c Candidate) bool {
				if reserveRestaurants && c.Category == CategoryRestaurant {
					return false
				}
				if reserveRestaurants && hasBlock {
					if cur.Add(time.Duration(c.DurationMinutes) * time.Minute).After(blockBefore) {
						return false
					}
				}
				return true
			})
		if !found {
			if reserveRestaurants && hasBlock && blockBefore.Before(end) {
				// Nothing fits before the next meal window; idle until it
				// opens.
				cur = blockBefore
				continue
			}
			break
		}
		stop, nextCur := s.schedule(pick, cur, lastID, lastLat, lastLng)
		scheduled = append(scheduled, stop)
		used[pick.PlaceID] = true
		remaining -= costOf(pick)
		cur = nextCur
		lastID, lastLat, lastLng = pick.PlaceID, pick.Lat, pick.Lng
	}

	if scheduled == nil {
		return []ScheduledStop{}
	}
	return scheduled
}

func restaurantsOnly(c Candidate) bool { return c.Category == CategoryRestaurant }

// pickBest selects the admissible candidate minimizing travel time from the
// last location, tie-broken by higher rating then name ascending.
func (s *PlannerService) pickBest(
	cands []Candidate,
	used map[string]bool,
	cur, end time.Time,
	remaining float64,
	lastID string,
	lastLat, lastLng float64,
	admit func(Candidate) bool,
) (Candidate, bool) {
	var best Candidate
	bestTravel := 0.0
	found := false

	for _, c := range cands {
		if used[c.PlaceID] || !admit(c) {
			continue
		}
		if cur.Add(time.Duration(c.DurationMinutes) * time.Minute).After(end) {
			continue
		}
		if costOf(c) > remaining {
			continue
		}
		travel := s.travelMinutes(lastID, c.PlaceID, lastLat, lastLng, c.Lat, c.Lng)
		if !found || betterPick(c, travel, best, bestTravel) {
			best, bestTravel, found = c, travel, true
		}
	}
	return best, found
}

func betterPick(c Candidate, travel float64, best Candidate, bestTravel float64) bool {
	if travel != bestTravel {
		return travel < bestTravel
	}
	if r, br := ratingOf(c), ratingOf(best); r != br {
		return r > br
	}
	return c.Name < best.Name
}

func (s *PlannerService) schedule(pick Candidate, cur time.Time, lastID string, lastLat, lastLng float64) (ScheduledStop, time.Time) {
	stop := ScheduledStop{
		Candidate: pick,
		Start:     cur,
		End:       cur.Add(time.Duration(pick.DurationMinutes) * time.Minute),
	}
	travel := s.travelMinutes(lastID, pick.PlaceID, lastLat, lastLng, pick.Lat, pick.Lng)
	next := stop.End.Add(time.Duration(travel * float64(time.Minute)))
	return stop, next
}

func (s *PlannerService) travelMinutes(fromID, toID string, fromLat, fromLng, toLat, toLng float64) float64 {
	if s.travelCache != nil {
		if minutes, ok := s.travelCache.Get(fromID, toID); ok {
			return minutes
		}
	}
	minutes := utils.EstimateTravelTimeMinutes(utils.HaversineDistanceKm(fromLat, fromLng, toLat, toLng))
	if s.travelCache != nil {
		s.travelCache.Set(fromID, toID, minutes, time.Hour)
	}
	return minutes
}

func activeMealWindow(cur time.Time, windows []MealWindow, slots map[string]int) (MealWindow, bool) {
	minute := utils.MinutesOfDay(cur)
	for _, w := range windows {
		if slots[w.Name] > 0 && minute >= w.StartMinute && minute < w.EndMinute {
			return w, true
		}
	}
	return MealWindow{}, false
}

// nextPendingWindowStart returns the opening time, on cur's day, of the
// nearest unreserved meal window still ahead of cur.
func nextPendingWindowStart(cur time.Time, windows []MealWindow, slots map[string]int) (time.Time, bool) {
	minute := utils.MinutesOfDay(cur)
	sorted := make([]MealWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartMinute < sorted[j].StartMinute })

	for _, w := range sorted {
		if slots[w.Name] > 0 && w.StartMinute > minute {
			day := time.Date(cur.Year(), cur.Month(), cur.Day(), 0, 0, 0, 0, cur.Location())
			return day.Add(time.Duration(w.StartMinute) * time.Minute), true
		}
	}
	return time.Time{}, false
}

func anySlotPending(slots map[string]int) bool {
	for _, n := range slots {
		if n > 0 {
			return true
		}
	}
	return false
}

func anyUnusedRestaurant(cands []Candidate, used map[string]bool) bool {
	for _, c := range cands {
		if c.Category == CategoryRestaurant && !used[c.PlaceID] {
			return true
		}
	}
	return false
}

func costOf(c Candidate) float64 {
	if c.CostPerPerson == nil {
		return 0
	}
	return *c.CostPerPerson
}

func ratingOf(c Candidate) float64 {
	if c.Rating == nil {
		return 0
	}
	return *c.Rating
}

// Default visit durations per category, used when no curated metadata
// exists for a cached place.
var defaultDurations = map[Category]int{
	CategoryRestaurant:        60,
	CategoryMuseum:            120,
	CategoryTouristAttraction: 90,
	CategoryOther:             60,
}

// Rough cost-per-person estimates for the provider's ordinal price levels.
var priceLevelCosts = []float64{0, 10, 25, 60, 120}

func candidateFromPlace(p response_models.Place) Candidate {
	cat := Category(p.Category)
	dur, ok := defaultDurations[cat]
	if !ok {
		cat = CategoryOther
		dur = defaultDurations[CategoryOther]
	}

	var cost *float64
	if p.PriceLevel != nil && *p.PriceLevel >= 0 && *p.PriceLevel < len(priceLevelCosts) {
		v := priceLevelCosts[*p.PriceLevel]
		cost = &v
	}

	return Candidate{
		PlaceID:         p.PlaceID,
		Name:            p.Name,
		Lat:             p.Lat,
		Lng:             p.Lng,
		Rating:          p.Rating,
		Category:        cat,
		CostPerPerson:   cost,
		DurationMinutes: dur,
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
