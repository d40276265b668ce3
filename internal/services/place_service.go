package services

import (
	"context"
	"log"
	"strings"

	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/providers"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

// Keywords sent to the provider, one fetch per category, merged afterwards.
var fetchKeywords = []string{"tourist attraction", "restaurant", "museum", "movie theater"}

// Two region centers closer than this count as the same region for coverage.
const regionMatchToleranceM = 500.0

const AllCategoriesQuery = "all categories"

type PlaceServiceInterface interface {
	FetchPlaces(ctx context.Context, lat, lng, radiusM float64, query string) ([]response_models.Place, error)
	FetchActivities(ctx context.Context, lat, lng, radiusM float64) ([]response_models.Place, error)
	DeletePlace(ctx context.Context, placeID string) error
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
	provider  providers.PlaceProvider
}

func NewPlaceService(placeRepo repositories.PlaceRepository, provider providers.PlaceProvider) PlaceServiceInterface {
	return &PlaceService{
		placeRepo: placeRepo,
		provider:  provider,
	}
}

// FetchPlaces serves a single category/query from the cache only. An empty
// result means nothing matched, not a failure.
func (s *PlaceService) FetchPlaces(ctx context.Context, lat, lng, radiusM float64, query string) ([]response_models.Place, error) {
	places, err := s.placeRepo.LoadAllPlaces(ctx)
	if err != nil {
		log.Printf("Error loading places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	q := strings.ToLower(query)
	out := make([]response_models.Place, 0, len(places))
	for _, p := range places {
		if q != AllCategoriesQuery && !strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		distanceM := utils.HaversineDistanceKm(lat, lng, p.Latitude, p.Longitude) * 1000
		if distanceM > radiusM {
			continue
		}
		out = append(out, toPlaceResponse(p))
	}
	return out, nil
}

// FetchActivities runs the full pipeline: region coverage check, provider
// fetch on a miss, categorization, persist, and returns the deduplicated
// categorized set. Provider failures fall back to whatever is cached and are
// only fatal when the cache has nothing for the region either.
func (s *PlaceService) FetchActivities(ctx context.Context, lat, lng, radiusM float64) ([]response_models.Place, error) {
	covered, err := s.isRegionCovered(ctx, lat, lng, radiusM)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if covered {
		return s.cachedWithinRadius(ctx, lat, lng, radiusM)
	}

	var raw []providers.RawPlace
	for _, keyword := range fetchKeywords {
		results, err := s.provider.NearbySearch(ctx, lat, lng, radiusM, keyword)
		if err != nil {
			log.Printf("Provider fetch failed for %q: %v", keyword, err)
			return s.fallbackToCache(ctx, lat, lng, radiusM, err)
		}
		raw = append(raw, results...)
	}

	if len(raw) == 0 {
		return []response_models.Place{}, nil
	}

	// Deduplicate by place_id, keeping first occurrence order.
	seen := make(map[string]bool, len(raw))
	rows := make([]db_models.Place, 0, len(raw))
	for _, r := range raw {
		if r.PlaceID == "" || seen[r.PlaceID] {
			continue
		}
		seen[r.PlaceID] = true
		rows = append(rows, db_models.Place{
			PlaceID:    r.PlaceID,
			Name:       r.Name,
			Latitude:   r.Geometry.Location.Lat,
			Longitude:  r.Geometry.Location.Lng,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
			Category:   string(CategorizePlace(r)),
		})
	}

	if err := s.placeRepo.SavePlaces(ctx, rows); err != nil {
		log.Printf("Error saving places: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if err := s.placeRepo.SaveFetchedRegion(ctx, lat, lng, radiusM); err != nil {
		log.Printf("Error saving fetched region: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Place, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPlaceResponse(p))
	}
	return out, nil
}

func (s *PlaceService) DeletePlace(ctx context.Context, placeID string) error {
	if placeID == "" {
		return utils.ErrInvalidInput
	}
	if err := s.placeRepo.DeletePlace(ctx, placeID); err != nil {
		log.Printf("Error deleting place %s: %v", placeID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

// isRegionCovered reports whether a saved region with equal-or-larger radius
// is centered near the requested point. A nearby point just outside every
// saved circle triggers an unnecessary re-fetch; that over-fetch is the
// accepted trade-off of this heuristic.
func (s *PlaceService) isRegionCovered(ctx context.Context, lat, lng, radiusM float64) (bool, error) {
	regions, err := s.placeRepo.ListFetchedRegions(ctx)
	if err != nil {
		return false, err
	}
	for _, region := range regions {
		centerDistM := utils.HaversineDistanceKm(lat, lng, region.Latitude, region.Longitude) * 1000
		if centerDistM <= regionMatchToleranceM && region.Radius >= radiusM {
			return true, nil
		}
	}
	return false, nil
}

func (s *PlaceService) cachedWithinRadius(ctx context.Context, lat, lng, radiusM float64) ([]response_models.Place, error) {
	places, err := s.placeRepo.LoadAllPlaces(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.Place, 0, len(places))
	for _, p := range places {
		distanceM := utils.HaversineDistanceKm(lat, lng, p.Latitude, p.Longitude) * 1000
		if distanceM <= radiusM {
			out = append(out, toPlaceResponse(p))
		}
	}
	return out, nil
}

func (s *PlaceService) fallbackToCache(ctx context.Context, lat, lng, radiusM float64, cause error) ([]response_models.Place, error) {
	cached, err := s.cachedWithinRadius(ctx, lat, lng, radiusM)
	if err != nil {
		return nil, err
	}
	if len(cached) == 0 {
		return nil, utils.ErrProviderError
	}
	log.Printf("Serving %d cached places after provider failure: %v", len(cached), cause)
	return cached, nil
}

func toPlaceResponse(p db_models.Place) response_models.Place {
	return response_models.Place{
		PlaceID:    p.PlaceID,
		Name:       p.Name,
		Lat:        p.Latitude,
		Lng:        p.Longitude,
		Rating:     p.Rating,
		PriceLevel: p.PriceLevel,
		Category:   p.Category,
	}
}
