package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIntentItinerary(t *testing.T) {
	for _, msg := range []string{
		"plan my evening",
		"Can you plan a night for us?",
		"I want a full day of food",
		"build me an itinerary",
	} {
		require.Equal(t, IntentItinerary, ParseIntent(msg).Type, "msg=%q", msg)
	}
}

func TestParseIntentFilter(t *testing.T) {
	intent := ParseIntent("Somewhere romantic for Italian in Digbeth")

	require.Equal(t, IntentFilter, intent.Type)
	require.Contains(t, intent.Vibes, "romantic")
	require.Contains(t, intent.Cuisines, "italian")
	require.Contains(t, intent.Regions, "digbeth")
	require.Contains(t, intent.Keywords, "romantic")
}

func TestParseIntentRecommendationDefault(t *testing.T) {
	intent := ParseIntent("where should we eat tonight?")
	require.Equal(t, IntentRecommendation, intent.Type)
	require.Empty(t, intent.Vibes)
	require.Empty(t, intent.Regions)
	require.Empty(t, intent.Cuisines)
}

func TestParseIntentPriceMapping(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"somewhere cheap tonight", "£"},
		{"a moderate dinner", "££"},
		{"take me somewhere posh", "£££"},
	}
	for _, tt := range tests {
		intent := ParseIntent(tt.msg)
		require.Equal(t, tt.want, intent.PriceLevel, "msg=%q", tt.msg)
	}
}

func TestPriceAloneStaysRecommendation(t *testing.T) {
	// Price hints alone do not flip the intent to filter.
	intent := ParseIntent("somewhere cheap tonight")
	require.Equal(t, IntentRecommendation, intent.Type)
	require.Equal(t, "£", intent.PriceLevel)
}

func TestItineraryWinsOverFilterKeywords(t *testing.T) {
	intent := ParseIntent("plan my evening around Thai food in Moseley")
	require.Equal(t, IntentItinerary, intent.Type)
	require.Contains(t, intent.Cuisines, "thai")
	require.Contains(t, intent.Regions, "moseley")
}
