package postgre

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"missed-call-recovery/internal/lead/repository"
	"missed-call-recovery/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the lead domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("lead/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Connect opens and pings a Postgres connection from a DSN.
func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return db, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("lead/repository/postgre.%s", method)
}
