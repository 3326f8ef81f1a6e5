package database

import (
	"database/sql"

	"github.com/lib/pq"

	"tastefinder/models"
)

// ListRestaurants loads the full candidate set the recommendation core
// works from. Nullable columns come back as nil pointers so scorers can
// tell "absent" from zero.
func ListRestaurants(db *sql.DB) ([]models.Restaurant, error) {
	rows, err := db.Query(`
		SELECT id, name, cuisine, cuisine_type, price_level, ambience,
		       description, signature_dishes, rating, is_open,
		       latitude, longitude, region, image_url
		FROM restaurants
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

// GetRestaurant loads a single restaurant by id. A missing row returns
// sql.ErrNoRows for the handler to translate.
func GetRestaurant(db *sql.DB, id string) (models.Restaurant, error) {
	row := db.QueryRow(`
		SELECT id, name, cuisine, cuisine_type, price_level, ambience,
		       description, signature_dishes, rating, is_open,
		       latitude, longitude, region, image_url
		FROM restaurants
		WHERE id = $1
	`, id)
	return scanRestaurant(row)
}

// ListCuisines returns the distinct cuisine labels for filter population.
func ListCuisines(db *sql.DB) ([]string, error) {
	return listStrings(db, `
		SELECT DISTINCT cuisine FROM restaurants
		WHERE cuisine IS NOT NULL AND cuisine <> ''
		ORDER BY cuisine ASC
	`)
}

// ListRegions returns the distinct region labels for filter population.
func ListRegions(db *sql.DB) ([]string, error) {
	return listStrings(db, `
		SELECT DISTINCT region FROM restaurants
		WHERE region IS NOT NULL AND region <> ''
		ORDER BY region ASC
	`)
}

func listStrings(db *sql.DB, query string) ([]string, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row scanner) (models.Restaurant, error) {
	var r models.Restaurant
	var cuisine, cuisineType, priceLevel, description, region, imageURL sql.NullString
	var rating, latitude, longitude sql.NullFloat64
	var isOpen sql.NullBool

	err := row.Scan(
		&r.ID, &r.Name, &cuisine, &cuisineType, &priceLevel,
		pq.Array(&r.Ambience), &description, pq.Array(&r.SignatureDishes),
		&rating, &isOpen, &latitude, &longitude, &region, &imageURL,
	)
	if err != nil {
		return r, err
	}

	r.Cuisine = cuisine.String
	r.CuisineType = cuisineType.String
	r.PriceLevel = priceLevel.String
	r.Description = description.String
	r.Region = region.String
	r.ImageURL = imageURL.String
	if rating.Valid {
		r.Rating = &rating.Float64
	}
	if isOpen.Valid {
		r.IsOpen = &isOpen.Bool
	}
	if latitude.Valid {
		r.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		r.Longitude = &longitude.Float64
	}
	return r, nil
}
