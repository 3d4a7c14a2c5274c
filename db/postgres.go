package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// NewPostgresDB opens a traced connection pool to Postgres.
func NewPostgresDB(url string) (*sqlx.DB, error) {
	traceDB, err := otelsql.Open("postgres", url,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName("tickets"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not open postgres connection: %w", err)
	}

	return sqlx.NewDb(traceDB, "postgres"), nil
}
