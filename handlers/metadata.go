package handlers

import (
	"database/sql"
	"net/http"

	"github.com/rs/zerolog"

	"tastefinder/database"
)

// CuisinesHandler retrieves the distinct cuisine labels to populate the
// searchable filter controls.
func CuisinesHandler(db *sql.DB, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cuisines, err := database.ListCuisines(db)
		if err != nil {
			log.Error().Err(err).Msg("cuisines query failed")
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}
		writeJSON(w, cuisines)
	}
}

// RegionsHandler retrieves the distinct neighbourhood labels for the
// region filter chips.
func RegionsHandler(db *sql.DB, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		regions, err := database.ListRegions(db)
		if err != nil {
			log.Error().Err(err).Msg("regions query failed")
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}
		writeJSON(w, regions)
	}
}
