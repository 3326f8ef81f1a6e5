package tags

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tastefinder/models"
)

func boolPtr(b bool) *bool { return &b }

func TestPriceTagDeterminism(t *testing.T) {
	tests := []struct {
		priceLevel string
		wantLabel  string
		wantConf   int
	}{
		{"£", "Budget-Friendly", 90},
		{"££", "Mid-Range", 85},
		{"£££", "Fine Dining", 95},
		{"££££", "Fine Dining", 95},
		{"$$", "Mid-Range", 85},
	}
	for _, tt := range tests {
		got := Generate(models.Restaurant{Name: "Plain Kitchen", PriceLevel: tt.priceLevel})
		require.Len(t, got, 1, "priceLevel=%q", tt.priceLevel)
		require.Equal(t, tt.wantLabel, got[0].Label)
		require.Equal(t, tt.wantConf, got[0].Confidence)
		require.Equal(t, models.TagPrice, got[0].Category)
	}
}

func TestNoPriceTagWhenPriceLevelAbsent(t *testing.T) {
	for _, tag := range Generate(models.Restaurant{Name: "Plain Kitchen"}) {
		require.NotEqual(t, models.TagPrice, tag.Category)
	}
}

func TestOpenNowAsymmetry(t *testing.T) {
	open := Generate(models.Restaurant{Name: "Plain Kitchen", IsOpen: boolPtr(true)})
	require.Contains(t, labels(open), "Open Now")

	for _, r := range []models.Restaurant{
		{Name: "Plain Kitchen", IsOpen: boolPtr(false)},
		{Name: "Plain Kitchen"},
	} {
		require.NotContains(t, labels(Generate(r)), "Closed")
		require.NotContains(t, labels(Generate(r)), "Open Now")
	}
}

func TestCuisineTags(t *testing.T) {
	tests := []struct {
		cuisine string
		want    string
	}{
		{"Thai", "Thai"},
		{"Afro-Caribbean", "African Cuisine"},
		{"Modern Italian", "Italian"},
		{"Japanese", "Japanese"},
	}
	for _, tt := range tests {
		got := Generate(models.Restaurant{Name: "Plain Kitchen", Cuisine: tt.cuisine})
		require.Contains(t, labels(got), tt.want, "cuisine=%q", tt.cuisine)
		for _, tag := range got {
			if tag.Label == tt.want {
				require.Equal(t, 100, tag.Confidence)
				require.Equal(t, models.TagCuisine, tag.Category)
			}
		}
	}
}

func TestCuisineFallbackField(t *testing.T) {
	got := Generate(models.Restaurant{Name: "Plain Kitchen", CuisineType: "Indian"})
	require.Contains(t, labels(got), "Indian")
}

func TestConfidenceGrowsWithMatches(t *testing.T) {
	one := Generate(models.Restaurant{Name: "Plain Kitchen", Description: "a cozy spot"})
	three := Generate(models.Restaurant{Name: "Plain Kitchen", Description: "cozy candlelit romantic dining"})

	require.Equal(t, 25, confidenceOf(t, one, "Romantic"))
	require.Equal(t, 75, confidenceOf(t, three, "Romantic"))
}

func TestGenerateCapAndOrdering(t *testing.T) {
	r := models.Restaurant{
		Name:            "Casa Fuego",
		Cuisine:         "Mexican-Asian",
		PriceLevel:      "££",
		IsOpen:          boolPtr(true),
		Description:     "romantic candlelit dining with spicy chilli plates, vegetarian options and fresh seafood",
		Ambience:        []string{"intimate", "lively"},
		SignatureDishes: []string{"fiery prawn tacos"},
	}
	got := Generate(r)

	require.Len(t, got, MaxTags)
	for i := 1; i < len(got); i++ {
		require.GreaterOrEqual(t, got[i-1].Confidence, got[i].Confidence)
	}
	for _, tag := range got {
		require.GreaterOrEqual(t, tag.Confidence, 0)
		require.LessOrEqual(t, tag.Confidence, 100)
	}
	// The two unconditional cuisine tags survive the cut at 100.
	require.Contains(t, labels(got), "Mexican")
	require.Contains(t, labels(got), "Asian Fusion")
}

func TestAmbienceGrantsOccasionConfidence(t *testing.T) {
	got := Generate(models.Restaurant{Name: "Plain Kitchen", Ambience: []string{"Intimate"}})
	require.Equal(t, 50, confidenceOf(t, got, "Date Night"))
}

func TestHeroTag(t *testing.T) {
	t.Run("prefers occasion or vibe", func(t *testing.T) {
		hero := HeroTag(models.Restaurant{
			Name:        "Plain Kitchen",
			Cuisine:     "Thai",
			IsOpen:      boolPtr(true),
			Description: "romantic candlelit dining",
		})
		require.NotNil(t, hero)
		require.Contains(t, []models.TagCategory{models.TagOccasion, models.TagVibe}, hero.Category)
	})

	t.Run("falls back to first tag", func(t *testing.T) {
		hero := HeroTag(models.Restaurant{Name: "Plain Kitchen", Cuisine: "Thai"})
		require.NotNil(t, hero)
		require.Equal(t, "Thai", hero.Label)
	})

	t.Run("nil when no tags", func(t *testing.T) {
		require.Nil(t, HeroTag(models.Restaurant{Name: "Plain Kitchen"}))
	})
}

func TestDetectSpicy(t *testing.T) {
	require.True(t, DetectSpicy(models.Restaurant{Name: "Jerk Shack", Description: "scotch bonnet heat"}))
	require.False(t, DetectSpicy(models.Restaurant{Name: "Plain Kitchen", Description: "mild comfort food"}))
}

func TestPriceTier(t *testing.T) {
	require.Equal(t, models.PriceBudget, PriceTier("£"))
	require.Equal(t, models.PriceMid, PriceTier("££"))
	require.Equal(t, models.PricePremium, PriceTier("£££"))
	require.Equal(t, models.PricePremium, PriceTier("££££"))
	require.Equal(t, models.PriceMid, PriceTier(""))
}

func labels(tags []models.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.Label
	}
	return out
}

func confidenceOf(t *testing.T, tags []models.Tag, label string) int {
	t.Helper()
	for _, tag := range tags {
		if tag.Label == label {
			return tag.Confidence
		}
	}
	t.Fatalf("tag %q not found in %v", label, labels(tags))
	return 0
}
