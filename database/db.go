package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Connect establishes a connection to the PostgreSQL database, optimized
// for serverless hosts by keeping no idle connections around.
func Connect(connStr string) (*sql.DB, error) {
	if connStr == "" {
		return nil, fmt.Errorf("database connection string is empty")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// Disable idle connections to avoid holding on to suspended compute.
	db.SetMaxIdleConns(0)
	db.SetMaxOpenConns(10)

	return db, nil
}
