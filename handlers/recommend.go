package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"tastefinder/database"
	"tastefinder/models"
	"tastefinder/nearby"
	"tastefinder/suggest"
	"tastefinder/tags"
)

// ParseProfile extracts an optional taste profile from the query string.
// Returns nil when no profile parameter is present, which downstream
// scorers treat as "no personalization".
func ParseProfile(query url.Values) *models.TasteProfile {
	cuisines := query.Get("cuisines")
	price := query.Get("price")
	spice := query.Get("spice")
	if cuisines == "" && price == "" && spice == "" {
		return nil
	}

	p := &models.TasteProfile{
		PricePreference: models.PricePreference(price),
		SpiceLevel:      models.SpiceLevel(spice),
	}
	for _, c := range strings.Split(cuisines, ",") {
		if c = strings.TrimSpace(c); c != "" {
			p.Cuisines = append(p.Cuisines, c)
		}
	}
	return p
}

// ParseRankOptions reads the optional weight and radius overrides.
func ParseRankOptions(query url.Values) nearby.Options {
	var opts nearby.Options
	opts.TasteWeight, _ = strconv.ParseFloat(query.Get("taste_weight"), 64)
	opts.DistanceWeight, _ = strconv.ParseFloat(query.Get("distance_weight"), 64)
	opts.MaxDistanceKm, _ = strconv.ParseFloat(query.Get("radius"), 64)
	return opts
}

func parseLocation(query url.Values) (models.Coordinates, bool) {
	latStr, lonStr := query.Get("lat"), query.Get("lon")
	if latStr == "" || lonStr == "" {
		return models.Coordinates{}, false
	}
	lat, _ := strconv.ParseFloat(latStr, 64)
	lon, _ := strconv.ParseFloat(lonStr, 64)
	return models.Coordinates{Latitude: lat, Longitude: lon}, true
}

// NearbyHandler returns the taste-and-distance ranked restaurant feed for
// the diner's coordinates.
func NearbyHandler(db *sql.DB, engine *nearby.Engine, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc, ok := parseLocation(r.URL.Query())
		if !ok {
			http.Error(w, "lat and lon are required", http.StatusBadRequest)
			return
		}

		restaurants, err := database.ListRestaurants(db)
		if err != nil {
			log.Error().Err(err).Msg("restaurant load failed")
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}

		ranked := engine.Rank(restaurants, loc, ParseProfile(r.URL.Query()), ParseRankOptions(r.URL.Query()))

		writeJSON(w, map[string]any{
			"restaurants": ranked,
			"total_count": len(ranked),
		})
	}
}

// RegionCountsHandler returns the per-region histogram of nearby
// restaurants, including the "All" total.
func RegionCountsHandler(db *sql.DB, engine *nearby.Engine, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc, ok := parseLocation(r.URL.Query())
		if !ok {
			http.Error(w, "lat and lon are required", http.StatusBadRequest)
			return
		}
		radius, _ := strconv.ParseFloat(r.URL.Query().Get("radius"), 64)

		restaurants, err := database.ListRestaurants(db)
		if err != nil {
			log.Error().Err(err).Msg("restaurant load failed")
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}

		writeJSON(w, engine.CountByRegion(restaurants, loc, radius))
	}
}

// SuggestionsHandler returns taste-only smart suggestions, for surfaces
// without a usable diner location.
func SuggestionsHandler(db *sql.DB, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurants, err := database.ListRestaurants(db)
		if err != nil {
			log.Error().Err(err).Msg("restaurant load failed")
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		suggestions := suggest.Build(restaurants, ParseProfile(r.URL.Query()), limit)

		writeJSON(w, map[string]any{"suggestions": suggestions})
	}
}

// TagsHandler generates the derived tag set and hero tag for one
// restaurant.
func TagsHandler(db *sql.DB, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		restaurant, err := database.GetRestaurant(db, id)
		if err == sql.ErrNoRows {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("restaurant load failed")
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}

		writeJSON(w, map[string]any{
			"tags":     tags.Generate(restaurant),
			"hero_tag": tags.HeroTag(restaurant),
		})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
