// Package taste computes a 0-100 compatibility score between one
// restaurant and a diner's declared preferences. Bonuses are additive and
// deliberately overlap; the total is clamped once at the end, so relative
// ordering near the ceiling is preserved.
package taste

import (
	"math"
	"strings"

	"tastefinder/models"
	"tastefinder/tags"
)

const (
	baseScore         = 50
	cuisineBonus      = 25
	priceExactBonus   = 15
	priceMidBonus     = 8
	spicyHotBonus     = 10
	mildNotSpicyBonus = 5
	openBonus         = 5

	noProfileUnrated = 70
)

// Score rates how well a restaurant fits a taste profile. A nil profile
// yields a profile-agnostic baseline: round(rating*15) when rated, else a
// flat 70.
func Score(r models.Restaurant, profile *models.TasteProfile) int {
	if profile == nil {
		if r.Rating != nil {
			return clamp(int(math.Round(*r.Rating * 15)))
		}
		return noProfileUnrated
	}

	score := baseScore

	if CuisineMatch(r, profile) != "" {
		score += cuisineBonus
	}

	if tags.PriceTier(r.PriceLevel) == profile.PricePreference {
		score += priceExactBonus
	} else if profile.PricePreference == models.PriceMid {
		// Mid-preference diners get partial credit against every tier.
		score += priceMidBonus
	}

	spicy := tags.DetectSpicy(r)
	if spicy && profile.SpiceLevel == models.SpiceHot {
		score += spicyHotBonus
	} else if !spicy && profile.SpiceLevel == models.SpiceMild {
		score += mildNotSpicyBonus
	}

	if r.Rating != nil {
		score += int(math.Round((*r.Rating - 4) * 10))
	}

	if r.Open() {
		score += openBonus
	}

	return clamp(score)
}

// CuisineMatch returns the first profile cuisine that matches the
// restaurant's cuisine, or "" when none does. Matching is bidirectional
// fuzzy containment: the profile cuisine appearing inside the restaurant
// label, or the label's first word appearing inside the profile cuisine.
func CuisineMatch(r models.Restaurant, profile *models.TasteProfile) string {
	if profile == nil {
		return ""
	}
	label := strings.ToLower(r.CuisineLabel())
	if label == "" {
		return ""
	}
	firstWord := label
	if i := strings.IndexByte(label, ' '); i > 0 {
		firstWord = label[:i]
	}
	for _, c := range profile.Cuisines {
		lc := strings.ToLower(strings.TrimSpace(c))
		if lc == "" {
			continue
		}
		if strings.Contains(label, lc) || strings.Contains(lc, firstWord) {
			return c
		}
	}
	return ""
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
