// Package db defines the contract of the PostgreSQL connection operator.
package db

import (
	"context"

	"github.com/gnames/genes/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages the connection pool. Components that need the
// database take the pool from it and run their own statements, including
// CopyFrom for bulk inserts.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool, nil before Connect.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)
}
