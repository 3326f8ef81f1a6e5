// Package config loads service configuration from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server needs from the environment. A .env
// file, when present, is loaded by main before parsing.
type Config struct {
	DatabaseURL      string   `envconfig:"DATABASE_URL" required:"true"`
	Port             string   `envconfig:"PORT" default:"3003"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	GoogleMapsAPIKey string   `envconfig:"GOOGLE_MAPS_API_KEY"`
	LocationSeed     int64    `envconfig:"LOCATION_SEED" default:"1"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
