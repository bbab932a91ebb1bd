package db

import "context"

// SchemaManager keeps gene tables in shape for loading and querying.
// Both methods are idempotent.
type SchemaManager interface {
	// Migrate creates or updates tables with GORM AutoMigrate and sets
	// byte-order collation on symbol and chromosome columns.
	Migrate(ctx context.Context) error

	// Analyze refreshes query planner statistics of all gene tables.
	Analyze(ctx context.Context) error
}
