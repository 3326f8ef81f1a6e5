package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"tastefinder/chat"
	"tastefinder/database"
	"tastefinder/models"
)

// ChatRequest is the body of a POST /api/chat call.
type ChatRequest struct {
	Message   string               `json:"message"`
	Latitude  float64              `json:"latitude"`
	Longitude float64              `json:"longitude"`
	Profile   *models.TasteProfile `json:"profile,omitempty"`
}

// ChatHandler runs one diner message through the intent parser and
// response composer. A message that matches nothing still returns 200
// with an apologetic reply.
func ChatHandler(db *sql.DB, composer *chat.Composer, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, "message is required", http.StatusBadRequest)
			return
		}

		restaurants, err := database.ListRestaurants(db)
		if err != nil {
			log.Error().Err(err).Msg("restaurant load failed")
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}

		loc := models.Coordinates{Latitude: req.Latitude, Longitude: req.Longitude}
		resp := composer.Process(req.Message, restaurants, loc, req.Profile)

		writeJSON(w, resp)
	}
}
