package services

import (
	"strings"

	"voyago/internal/providers"
)

// Category is the closed set of place categories the planner understands.
type Category string

const (
	CategoryTouristAttraction Category = "tourist_attraction"
	CategoryRestaurant        Category = "restaurant"
	CategoryMuseum            Category = "museum"
	CategoryOther             Category = "other"
)

var restaurantTypes = map[string]bool{
	"restaurant":    true,
	"food":          true,
	"cafe":          true,
	"bakery":        true,
	"bar":           true,
	"meal_takeaway": true,
	"meal_delivery": true,
}

var attractionTypes = map[string]bool{
	"tourist_attraction": true,
	"park":               true,
	"church":             true,
	"place_of_worship":   true,
	"amusement_park":     true,
	"zoo":                true,
	"aquarium":           true,
	"art_gallery":        true,
	"landmark":           true,
}

// CategorizePlace maps provider type tags and name heuristics onto exactly
// one category. Pure and deterministic; anything unmapped is "other".
// Museum wins over tourist_attraction because providers tag museums with
// both.
func CategorizePlace(raw providers.RawPlace) Category {
	for _, t := range raw.Types {
		if t == "museum" {
			return CategoryMuseum
		}
	}
	for _, t := range raw.Types {
		if restaurantTypes[t] {
			return CategoryRestaurant
		}
	}
	for _, t := range raw.Types {
		if attractionTypes[t] {
			return CategoryTouristAttraction
		}
	}

	name := strings.ToLower(raw.Name)
	switch {
	case strings.Contains(name, "museum") || strings.Contains(name, "musée"):
		return CategoryMuseum
	case strings.Contains(name, "restaurant") || strings.Contains(name, "café") ||
		strings.Contains(name, "bistro"):
		return CategoryRestaurant
	}
	return CategoryOther
}
