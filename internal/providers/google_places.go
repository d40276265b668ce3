package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// RawPlace is a provider result before categorization.
type RawPlace struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Geometry   Geometry `json:"geometry"`
	Rating     *float64 `json:"rating,omitempty"`
	PriceLevel *int     `json:"price_level,omitempty"`
	Types      []string `json:"types"`
}

type Geometry struct {
	Location Location `json:"location"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceProvider abstracts the external nearby-places lookup. Implementations
// are blocking I/O; callers own timeout and cancellation via ctx.
type PlaceProvider interface {
	NearbySearch(ctx context.Context, lat, lng, radiusM float64, keyword string) ([]RawPlace, error)
}

type GooglePlacesClient struct {
	HTTP   *http.Client
	APIKey string
	Host   string
}

func NewGooglePlacesClient() *GooglePlacesClient {
	key := os.Getenv("GOOGLE_PLACES_API_KEY")
	if key == "" {
		panic("GOOGLE_PLACES_API_KEY is empty")
	}
	return &GooglePlacesClient{
		HTTP:   &http.Client{Timeout: 15 * time.Second},
		APIKey: key,
		Host:   "maps.googleapis.com",
	}
}

func (c *GooglePlacesClient) NearbySearch(ctx context.Context, lat, lng, radiusM float64, keyword string) ([]RawPlace, error) {
	u := url.URL{
		Scheme: "https",
		Host:   c.Host,
		Path:   "/maps/api/place/nearbysearch/json",
	}
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", fmt.Sprintf("%.0f", radiusM))
	q.Set("keyword", keyword)
	q.Set("key", c.APIKey)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places nearby http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("places nearby bad status: %s", resp.Status)
	}

	var payload struct {
		Results []RawPlace `json:"results"`
		Status  string     `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places nearby decode: %w", err)
	}

	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places nearby status %s", payload.Status)
	}
	return payload.Results, nil
}
