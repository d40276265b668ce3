package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voyago/internal/providers"
)

func TestCategorizePlaceByTypeTags(t *testing.T) {
	cases := []struct {
		name     string
		types    []string
		expected Category
	}{
		{"Schwartz's Deli", []string{"restaurant", "food"}, CategoryRestaurant},
		{"Cafe Olimpico", []string{"cafe"}, CategoryRestaurant},
		{"McCord Stewart", []string{"museum", "tourist_attraction"}, CategoryMuseum},
		{"Mount Royal Park", []string{"park"}, CategoryTouristAttraction},
		{"Notre-Dame Basilica", []string{"church", "place_of_worship"}, CategoryTouristAttraction},
		{"Random Office", []string{"point_of_interest", "establishment"}, CategoryOther},
	}

	for _, tc := range cases {
		got := CategorizePlace(providers.RawPlace{Name: tc.name, Types: tc.types})
		assert.Equal(t, tc.expected, got, tc.name)
	}
}

func TestCategorizePlaceMuseumWinsOverAttraction(t *testing.T) {
	// Providers tag museums as tourist attractions too; museum must win
	// regardless of tag order.
	got := CategorizePlace(providers.RawPlace{
		Name:  "Museum of Fine Arts",
		Types: []string{"tourist_attraction", "museum"},
	})
	assert.Equal(t, CategoryMuseum, got)
}

func TestCategorizePlaceNameHeuristics(t *testing.T) {
	assert.Equal(t, CategoryMuseum,
		CategorizePlace(providers.RawPlace{Name: "Musée d'art contemporain"}))
	assert.Equal(t, CategoryRestaurant,
		CategorizePlace(providers.RawPlace{Name: "Le Bistro du Port"}))
	assert.Equal(t, CategoryOther,
		CategorizePlace(providers.RawPlace{Name: "Somewhere"}))
}

func TestCategorizePlaceUnknownFallsBackToOther(t *testing.T) {
	assert.Equal(t, CategoryOther,
		CategorizePlace(providers.RawPlace{Name: "X", Types: []string{"unmapped_tag"}}))
	assert.Equal(t, CategoryOther, CategorizePlace(providers.RawPlace{}))
}
