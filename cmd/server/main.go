package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"tastefinder/chat"
	"tastefinder/config"
	"tastefinder/database"
	"tastefinder/handlers"
	"tastefinder/location"
	"tastefinder/nearby"
	"tastefinder/worker"
)

// main initializes the server, database connection, ranking engine and
// background geocoding worker.
func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration error")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	logger.Info().Msg("connected to PostgreSQL")

	worker.StartGeocodingWorker(db, cfg.GoogleMapsAPIKey, logger)

	resolver := &location.StaticResolver{Seed: cfg.LocationSeed}
	engine := nearby.New(resolver)
	composer := chat.NewComposer(engine)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/nearby", handlers.NearbyHandler(db, engine, logger))
	mux.HandleFunc("GET /api/nearby/regions", handlers.RegionCountsHandler(db, engine, logger))
	mux.HandleFunc("GET /api/suggestions", handlers.SuggestionsHandler(db, logger))
	mux.HandleFunc("GET /api/restaurants/{id}/tags", handlers.TagsHandler(db, logger))
	mux.HandleFunc("POST /api/chat", handlers.ChatHandler(db, composer, logger))
	mux.HandleFunc("GET /api/cuisines", handlers.CuisinesHandler(db, logger))
	mux.HandleFunc("GET /api/regions", handlers.RegionsHandler(db, logger))

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
