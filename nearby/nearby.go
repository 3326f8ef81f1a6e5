// Package nearby ranks restaurants for a diner by blending taste
// compatibility with geographic proximity. Every function returns fresh
// slices and leaves its inputs untouched, so concurrent callers need no
// locking.
package nearby

import (
	"fmt"
	"math"
	"sort"

	"tastefinder/geo"
	"tastefinder/location"
	"tastefinder/models"
	"tastefinder/taste"
)

// Default blend used when callers pass zero-valued Options.
const (
	DefaultTasteWeight    = 0.7
	DefaultDistanceWeight = 0.3
	DefaultMaxDistanceKm  = 5.0
)

// Options tunes one ranking call. Zero values fall back to the defaults.
type Options struct {
	TasteWeight    float64
	DistanceWeight float64
	MaxDistanceKm  float64
}

func (o Options) withDefaults() Options {
	if o.TasteWeight == 0 && o.DistanceWeight == 0 {
		o.TasteWeight = DefaultTasteWeight
		o.DistanceWeight = DefaultDistanceWeight
	}
	if o.MaxDistanceKm == 0 {
		o.MaxDistanceKm = DefaultMaxDistanceKm
	}
	return o
}

// Engine ranks restaurants against a user location. The location
// resolver is injected so placement of records without coordinates is
// deterministic under test.
type Engine struct {
	Resolver location.Resolver
}

// New returns an Engine using the given resolver.
func New(resolver location.Resolver) *Engine {
	return &Engine{Resolver: resolver}
}

// Rank scores every restaurant within opts.MaxDistanceKm of userLoc and
// returns them ordered by combined score, highest first. Records that
// lack coordinates after resolution are silently excluded. An empty input
// produces an empty, non-nil result.
func (e *Engine) Rank(restaurants []models.Restaurant, userLoc models.Coordinates, profile *models.TasteProfile, opts Options) []models.NearbyRestaurant {
	opts = opts.withDefaults()

	out := make([]models.NearbyRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		r = e.resolve(r)
		if !r.HasLocation() {
			continue
		}

		dist := geo.Haversine(userLoc, models.Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude})
		if dist > opts.MaxDistanceKm {
			continue
		}

		distScore := geo.DistanceScore(dist, opts.MaxDistanceKm)
		tasteScore := taste.Score(r, profile)
		combined := int(math.Round(float64(tasteScore)*opts.TasteWeight + float64(distScore)*opts.DistanceWeight))

		out = append(out, models.NearbyRestaurant{
			Restaurant:    r,
			DistanceKm:    dist,
			DistanceText:  geo.TravelText(dist),
			DistanceScore: distScore,
			TasteScore:    tasteScore,
			CombinedScore: combined,
			Reason:        reason(r, profile, dist, tasteScore, combined),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CombinedScore > out[j].CombinedScore
	})
	return out
}

// Nearby returns every restaurant within maxDistanceKm of loc, closest
// first, with no taste weighting.
func (e *Engine) Nearby(restaurants []models.Restaurant, loc models.Coordinates, maxDistanceKm float64) []models.NearbyRestaurant {
	if maxDistanceKm == 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}

	out := make([]models.NearbyRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		r = e.resolve(r)
		if !r.HasLocation() {
			continue
		}
		dist := geo.Haversine(loc, models.Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude})
		if dist > maxDistanceKm {
			continue
		}
		out = append(out, models.NearbyRestaurant{
			Restaurant:   r,
			DistanceKm:   dist,
			DistanceText: geo.TravelText(dist),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

// CountByRegion buckets the Nearby result by region label. The "All" key
// holds the total count.
func (e *Engine) CountByRegion(restaurants []models.Restaurant, loc models.Coordinates, maxDistanceKm float64) map[string]int {
	found := e.Nearby(restaurants, loc, maxDistanceKm)
	counts := map[string]int{"All": len(found)}
	for _, n := range found {
		if n.Restaurant.Region != "" {
			counts[n.Restaurant.Region]++
		}
	}
	return counts
}

func (e *Engine) resolve(r models.Restaurant) models.Restaurant {
	if e.Resolver == nil {
		return r
	}
	return e.Resolver.Resolve(r)
}

// reason picks the single most relevant explanation for a result. The
// first satisfied condition wins; order matters.
func reason(r models.Restaurant, profile *models.TasteProfile, dist float64, tasteScore, combined int) string {
	text := geo.TravelText(dist)
	switch {
	case dist < 0.5:
		return fmt.Sprintf("Just %s from you", text)
	case dist < 1:
		return fmt.Sprintf("Only %s", text)
	}
	if profile != nil && tasteScore > 80 {
		if cuisine := taste.CuisineMatch(r, profile); cuisine != "" {
			return fmt.Sprintf("Matches your love for %s", cuisine)
		}
	}
	if r.Region != "" {
		return fmt.Sprintf("Located in %s", r.Region)
	}
	if combined > 85 {
		return "Top match for you nearby"
	}
	return fmt.Sprintf("%s from your location", text)
}
