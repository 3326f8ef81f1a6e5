// Package chat turns free-text diner messages into ranked restaurant
// answers: a keyword intent parser plus a templated response composer.
package chat

import "strings"

// IntentType is the coarse shape of what the diner asked for.
type IntentType string

const (
	// IntentItinerary asks for a planned evening rather than one venue.
	IntentItinerary IntentType = "itinerary"
	// IntentFilter narrows the search by vibe, region or cuisine.
	IntentFilter IntentType = "filter"
	// IntentRecommendation is the default open-ended ask.
	IntentRecommendation IntentType = "recommendation"
)

// Intent is the parsed reading of one message.
type Intent struct {
	Type       IntentType `json:"type"`
	Keywords   []string   `json:"keywords"`
	Vibes      []string   `json:"vibes"`
	Regions    []string   `json:"regions"`
	Cuisines   []string   `json:"cuisines"`
	PriceLevel string     `json:"price_level"`
}

var itineraryTriggers = []string{
	"plan my",
	"plan a",
	"plan an",
	"itinerary",
	"full day",
	"day out",
	"night out",
	"evening out",
}

var vibeWords = []string{
	"romantic", "cozy", "casual", "fancy", "upscale",
	"lively", "quiet", "family", "group", "date",
}

var regionNames = []string{
	"city centre", "digbeth", "jewellery quarter", "moseley",
	"kings heath", "harborne", "edgbaston", "selly oak", "stirchley",
}

var cuisineNames = []string{
	"thai", "italian", "indian", "mexican", "japanese",
	"chinese", "caribbean", "african", "asian", "vegan",
}

// priceWords maps spoken price hints onto the currency-symbol strings the
// rest of the system uses.
var priceWords = []struct {
	Word   string
	Symbol string
}{
	{"cheap", "£"},
	{"budget", "£"},
	{"affordable", "£"},
	{"mid-range", "££"},
	{"moderate", "££"},
	{"expensive", "£££"},
	{"fine dining", "£££"},
	{"posh", "£££"},
}

// ParseIntent reads a message with case-insensitive substring matching
// against the fixed vocabularies. Itinerary triggers win over everything;
// any vibe, region or cuisine hit makes the message a filter; otherwise
// it is an open recommendation.
func ParseIntent(message string) Intent {
	m := strings.ToLower(message)
	intent := Intent{Type: IntentRecommendation}

	for _, w := range vibeWords {
		if strings.Contains(m, w) {
			intent.Vibes = append(intent.Vibes, w)
			intent.Keywords = append(intent.Keywords, w)
		}
	}
	for _, rg := range regionNames {
		if strings.Contains(m, rg) {
			intent.Regions = append(intent.Regions, rg)
			intent.Keywords = append(intent.Keywords, rg)
		}
	}
	for _, c := range cuisineNames {
		if strings.Contains(m, c) {
			intent.Cuisines = append(intent.Cuisines, c)
			intent.Keywords = append(intent.Keywords, c)
		}
	}
	for _, p := range priceWords {
		if strings.Contains(m, p.Word) {
			intent.PriceLevel = p.Symbol
			intent.Keywords = append(intent.Keywords, p.Word)
			break
		}
	}

	for _, t := range itineraryTriggers {
		if strings.Contains(m, t) {
			intent.Type = IntentItinerary
			return intent
		}
	}

	if len(intent.Vibes) > 0 || len(intent.Regions) > 0 || len(intent.Cuisines) > 0 {
		intent.Type = IntentFilter
	}
	return intent
}
