// Package suggest produces taste-only recommendations with structured
// explanations, for surfaces where the diner's location is unknown.
package suggest

import (
	"fmt"
	"sort"

	"tastefinder/models"
	"tastefinder/tags"
	"tastefinder/taste"
)

// DefaultLimit caps a suggestion list when the caller passes no limit.
const DefaultLimit = 5

const maxReasons = 3

// Build scores every restaurant against the profile and returns the best
// limit of them, highest match first. The first entry is flagged as the
// top pick. Inputs are never mutated; an empty input yields an empty,
// non-nil slice.
func Build(restaurants []models.Restaurant, profile *models.TasteProfile, limit int) []models.SmartSuggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]models.SmartSuggestion, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, models.SmartSuggestion{
			Restaurant: r,
			MatchScore: taste.Score(r, profile),
			Tags:       tags.Generate(r),
			Reasons:    reasons(r, profile),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	if len(out) > 0 {
		out[0].IsTopPick = true
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Top returns the single best suggestion, or nil for an empty input.
func Top(restaurants []models.Restaurant, profile *models.TasteProfile) *models.SmartSuggestion {
	best := Build(restaurants, profile, 1)
	if len(best) == 0 {
		return nil
	}
	return &best[0]
}

// Explanation returns the text of a suggestion's strongest reason, with a
// generic fallback when no reason was generated.
func Explanation(s models.SmartSuggestion) string {
	if len(s.Reasons) > 0 {
		return s.Reasons[0].Text
	}
	return "A great all-round choice near you"
}

// reasons assembles up to maxReasons explanations in priority order. Each
// rule is checked independently; once the list is full the rest are
// skipped.
func reasons(r models.Restaurant, profile *models.TasteProfile) []models.SuggestionReason {
	var out []models.SuggestionReason
	add := func(icon, text string, strength models.ReasonStrength) {
		if len(out) < maxReasons {
			out = append(out, models.SuggestionReason{Icon: icon, Text: text, Strength: strength})
		}
	}

	score := taste.Score(r, profile)

	if profile != nil {
		if cuisine := taste.CuisineMatch(r, profile); cuisine != "" {
			add("❤️", fmt.Sprintf("Serves the %s food you love", cuisine), models.ReasonStrong)
		}
		if tags.PriceTier(r.PriceLevel) == profile.PricePreference {
			add("💰", "Fits your usual budget", models.ReasonMedium)
		}
		if profile.SpiceLevel == models.SpiceHot && tags.DetectSpicy(r) {
			add("🌶️", "Brings the heat you're after", models.ReasonMedium)
		}
	}

	for _, t := range tags.Generate(r) {
		if t.Category == models.TagOccasion {
			add("🎯", fmt.Sprintf("Great for %s", t.Label), models.ReasonLight)
			break
		}
	}

	if score >= 85 {
		add("🔥", "One of your strongest matches", models.ReasonStrong)
	}

	if profile == nil {
		if r.Rating != nil && *r.Rating >= 4.5 {
			add("⭐", fmt.Sprintf("Rated %.1f by other diners", *r.Rating), models.ReasonMedium)
		} else if r.Open() {
			add("🕐", "Open right now", models.ReasonLight)
		}
	}

	return out
}
