// Package tags derives categorical labels for a restaurant from its free
// text and structured attributes. Classification is driven by the keyword
// tables in this package, so the rules can be tuned without touching the
// matching code.
package tags

import (
	"sort"
	"strings"

	"tastefinder/models"
)

// MaxTags caps how many tags Generate returns for one restaurant.
const MaxTags = 6

// confidencePerMatch is the confidence contributed by each matched
// keyword; a single match is enough to clear includeThreshold.
const (
	confidencePerMatch = 25
	includeThreshold   = 25
	ambienceConfidence = 50
)

// keywordRule is one threshold-gated tag: the label it emits and the
// keywords whose presence in the corpus raises its confidence.
type keywordRule struct {
	Label    string
	Keywords []string
}

var vibeRules = []keywordRule{
	{"Romantic", []string{"romantic", "intimate", "candlelit", "cozy", "date", "wine"}},
	{"Group-Friendly", []string{"group", "sharing", "communal", "party", "friends", "platter"}},
	{"Casual", []string{"casual", "relaxed", "laid-back", "street", "quick", "grab"}},
	{"Upscale", []string{"upscale", "elegant", "fine", "luxury", "tasting menu", "sophisticated"}},
	{"Cultural", []string{"traditional", "authentic", "heritage", "family recipe", "homestyle", "cultural"}},
}

var dietaryRules = []keywordRule{
	{"Vegetarian-Friendly", []string{"vegetarian", "vegan", "plant-based", "veggie", "meat-free"}},
	{"Spicy", []string{"spicy", "hot", "chilli", "chili", "pepper", "fiery", "scotch bonnet", "jerk"}},
	{"Seafood", []string{"seafood", "fish", "prawn", "shrimp", "oyster", "lobster", "crab"}},
	{"Gluten-Free Options", []string{"gluten-free", "gluten free", "coeliac", "celiac"}},
}

// occasionRule extends keywordRule with ambience vibe words: any ambience
// entry containing one of them grants a flat confidence of 50.
type occasionRule struct {
	Label     string
	Keywords  []string
	VibeWords []string
}

var occasionRules = []occasionRule{
	{"Date Night", []string{"date night", "romantic", "intimate", "candlelit"}, []string{"romantic", "intimate", "cozy"}},
	{"Business Meeting", []string{"business", "meeting", "private dining", "quiet"}, []string{"quiet", "refined", "professional"}},
	{"Celebration", []string{"celebration", "birthday", "anniversary", "festive"}, []string{"lively", "vibrant", "festive"}},
	{"Family Dinner", []string{"family", "kids", "children", "family-friendly"}, []string{"family", "welcoming", "warm"}},
}

// cuisineLabels maps a lowercase cuisine fragment to the tag it emits.
// Cuisine tags are unconditional and always carry confidence 100.
var cuisineLabels = []struct {
	Fragment string
	Label    string
}{
	{"afro", "African Cuisine"},
	{"italian", "Italian"},
	{"thai", "Thai"},
	{"asian", "Asian Fusion"},
	{"indian", "Indian"},
	{"mexican", "Mexican"},
	{"japanese", "Japanese"},
}

var currencySymbols = "£$€¥"

// Generate derives up to MaxTags tags for a restaurant, sorted by
// confidence descending (stable for ties). Threshold-gated vibe, dietary
// and occasion tags are collected first, then price, open-now and
// unconditional cuisine tags; the combined list is sorted and truncated,
// so strong cuisine matches can crowd out weak vibe tags.
func Generate(r models.Restaurant) []models.Tag {
	corpus := buildCorpus(r)

	var out []models.Tag

	for _, rule := range vibeRules {
		if c := matchConfidence(corpus, rule.Keywords); c >= includeThreshold {
			out = append(out, models.Tag{Label: rule.Label, Category: models.TagVibe, Confidence: c})
		}
	}

	for _, rule := range dietaryRules {
		if c := matchConfidence(corpus, rule.Keywords); c >= includeThreshold {
			out = append(out, models.Tag{Label: rule.Label, Category: models.TagDietary, Confidence: c})
		}
	}

	for _, rule := range occasionRules {
		c := matchConfidence(corpus, rule.Keywords)
		if ambienceMatches(r.Ambience, rule.VibeWords) && c < ambienceConfidence {
			c = ambienceConfidence
		}
		if c >= includeThreshold {
			out = append(out, models.Tag{Label: rule.Label, Category: models.TagOccasion, Confidence: c})
		}
	}

	if t, ok := priceTag(r.PriceLevel); ok {
		out = append(out, t)
	}

	if r.Open() {
		out = append(out, models.Tag{Label: "Open Now", Category: models.TagTime, Confidence: 100})
	}

	cuisine := strings.ToLower(r.CuisineLabel())
	for _, c := range cuisineLabels {
		if strings.Contains(cuisine, c.Fragment) {
			out = append(out, models.Tag{Label: c.Label, Category: models.TagCuisine, Confidence: 100})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})

	if len(out) > MaxTags {
		out = out[:MaxTags]
	}
	return out
}

// HeroTag picks the single tag best suited for a headline badge: the
// first occasion or vibe tag, falling back to the first tag overall.
// Returns nil when the restaurant produced no tags.
func HeroTag(r models.Restaurant) *models.Tag {
	all := Generate(r)
	for i := range all {
		if all[i].Category == models.TagOccasion || all[i].Category == models.TagVibe {
			return &all[i]
		}
	}
	if len(all) > 0 {
		return &all[0]
	}
	return nil
}

// DetectSpicy applies the dietary spicy rule directly, independent of the
// MaxTags truncation, so scorers get a stable answer even for heavily
// tagged restaurants.
func DetectSpicy(r models.Restaurant) bool {
	corpus := buildCorpus(r)
	for _, rule := range dietaryRules {
		if rule.Label == "Spicy" {
			return matchConfidence(corpus, rule.Keywords) >= includeThreshold
		}
	}
	return false
}

// PriceTier buckets a price-level string by its currency-symbol count.
// Zero or one symbol reads as budget, exactly two as mid, three or more
// as premium. An empty price level defaults to mid.
func PriceTier(priceLevel string) models.PricePreference {
	switch n := countCurrencySymbols(priceLevel); {
	case n >= 3:
		return models.PricePremium
	case n == 2:
		return models.PriceMid
	case priceLevel == "":
		return models.PriceMid
	default:
		return models.PriceBudget
	}
}

func priceTag(priceLevel string) (models.Tag, bool) {
	if priceLevel == "" {
		return models.Tag{}, false
	}
	switch countCurrencySymbols(priceLevel) {
	case 0, 1:
		return models.Tag{Label: "Budget-Friendly", Category: models.TagPrice, Confidence: 90}, true
	case 2:
		return models.Tag{Label: "Mid-Range", Category: models.TagPrice, Confidence: 85}, true
	default:
		return models.Tag{Label: "Fine Dining", Category: models.TagPrice, Confidence: 95}, true
	}
}

func countCurrencySymbols(s string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(currencySymbols, r) {
			n++
		}
	}
	return n
}

// buildCorpus concatenates every text attribute into one lowercase string
// for substring matching.
func buildCorpus(r models.Restaurant) string {
	parts := []string{r.Name, r.CuisineLabel(), r.Description}
	parts = append(parts, r.Ambience...)
	parts = append(parts, r.SignatureDishes...)
	return strings.ToLower(strings.Join(parts, " "))
}

// matchConfidence scores keyword hits at confidencePerMatch each, capped
// at 100 so confidence is monotonically non-decreasing in match count.
func matchConfidence(corpus string, keywords []string) int {
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(corpus, kw) {
			matched++
		}
	}
	c := matched * confidencePerMatch
	if c > 100 {
		c = 100
	}
	return c
}

func ambienceMatches(ambience, vibeWords []string) bool {
	for _, a := range ambience {
		la := strings.ToLower(a)
		for _, w := range vibeWords {
			if strings.Contains(la, w) {
				return true
			}
		}
	}
	return false
}
