package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"smarthome-data/internal/config"
)

// NewPostgresDB opens the connection pool and verifies connectivity. The
// returned handle is the only shared resource in the process; it is passed
// explicitly to the resolvers and the seeder.
func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MaxIdle > 0 {
		db.SetMaxIdleConns(cfg.MaxIdle)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
