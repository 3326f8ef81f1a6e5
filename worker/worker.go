package worker

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	BatchSize        = 200
	WorkerPoolSize   = 50
	IntervalDuration = 2 * time.Second
)

// StartGeocodingWorker kicks off a background routine that resolves
// coordinates for restaurants still marked PENDING, using the Google Maps
// geocoding API. Rows it resolves become visible to the nearby ranking on
// the next load; until then those records are excluded from geo results.
func StartGeocodingWorker(db *sql.DB, apiKey string, logger zerolog.Logger) {
	log := logger.With().Str("component", "geocoder").Logger()
	if apiKey == "" {
		log.Warn().Msg("no maps API key configured, geocoding worker disabled")
		return
	}

	log.Info().Int("batch", BatchSize).Int("concurrency", WorkerPoolSize).Dur("interval", IntervalDuration).
		Msg("starting geocoding worker")

	ticker := time.NewTicker(IntervalDuration)
	go func() {
		for range ticker.C {
			processPendingRestaurants(db, apiKey, log)
		}
	}()
}

// processPendingRestaurants retrieves a batch of restaurants with PENDING
// geo_status and attempts to resolve their coordinates concurrently.
func processPendingRestaurants(db *sql.DB, apiKey string, log zerolog.Logger) {
	query := fmt.Sprintf("SELECT id, name, COALESCE(region, '') FROM restaurants WHERE geo_status = 'PENDING' LIMIT %d", BatchSize)
	rows, err := db.Query(query)
	if err != nil {
		log.Error().Err(err).Msg("pending batch query failed")
		return
	}
	defer rows.Close()

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, WorkerPoolSize)

	for rows.Next() {
		var id, name, region string
		if err := rows.Scan(&id, &name, &region); err != nil {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(id, name, region string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			lat, lon, err := fetchCoordinates(name, region, apiKey)
			if err != nil {
				log.Warn().Err(err).Str("id", id).Str("name", name).Msg("geocoding failed")
				return
			}

			_, err = db.Exec(`
				UPDATE restaurants
				SET latitude = $1, longitude = $2, geo_status = 'RESOLVED'
				WHERE id = $3
			`, lat, lon, id)

			if err != nil {
				log.Error().Err(err).Str("id", id).Msg("failed to store coordinates")
			} else {
				log.Info().Str("name", name).Float64("lat", lat).Float64("lon", lon).Msg("resolved")
			}
		}(id, name, region)
	}

	wg.Wait()
}

func fetchCoordinates(name, region, apiKey string) (float64, float64, error) {
	address := fmt.Sprintf("%s, Birmingham, UK", name)
	if region != "" {
		address = fmt.Sprintf("%s, %s, Birmingham, UK", name, region)
	}
	apiURL := fmt.Sprintf("https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s", url.QueryEscape(address), apiKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(apiURL)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	var result struct {
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
		Status string `json:"status"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, 0, err
	}

	if result.Status != "OK" {
		return 0, 0, fmt.Errorf("API error: %s", result.Status)
	}

	if len(result.Results) == 0 {
		return 0, 0, fmt.Errorf("no results found")
	}

	return result.Results[0].Geometry.Location.Lat, result.Results[0].Geometry.Location.Lng, nil
}
