package geo

import (
	"fmt"
	"math"

	"tastefinder/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two coordinates in
// kilometers. Inputs are not range-checked.
func Haversine(a, b models.Coordinates) float64 {
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*sinLon*sinLon
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TravelText converts a distance in kilometers into a short human label
// ("5 min walk", "15 min drive", "6.0 km away"). The tier thresholds and
// pace factors are fixed constants; callers rely on the exact strings.
func TravelText(km float64) string {
	switch {
	case km < 0.3:
		return "2 min walk"
	case km < 0.5:
		return "5 min walk"
	case km < 1:
		return fmt.Sprintf("%d min walk", int(math.Round(km*12)))
	case km < 2:
		return fmt.Sprintf("%d min walk", int(math.Round(km*10)))
	case km < 5:
		return fmt.Sprintf("%d min drive", int(math.Round(km*3)))
	default:
		return fmt.Sprintf("%.1f km away", km)
	}
}

// DistanceScore maps a distance onto 0-100 with linear decay: 100 at zero
// distance, 0 at maxDistance and beyond.
func DistanceScore(km, maxDistance float64) int {
	if maxDistance <= 0 || km >= maxDistance {
		return 0
	}
	return int(math.Round(100 * (1 - km/maxDistance)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
