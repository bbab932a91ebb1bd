// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gnames/genes/internal/iodb"
	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/genes/pkg/db"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// Tests never run against the configured production database.
	TestDatabaseName = "genes_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Database settings are taken from GENES_DATABASE_* environment variables
// when they are set, the database name is always TestDatabaseName.
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if v := os.Getenv("GENES_DATABASE_HOST"); v != "" {
		opts = append(opts, config.OptDatabaseHost(v))
	}
	if v := os.Getenv("GENES_DATABASE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if v := os.Getenv("GENES_DATABASE_USER"); v != "" {
		opts = append(opts, config.OptDatabaseUser(v))
	}
	if v := os.Getenv("GENES_DATABASE_PASSWORD"); v != "" {
		opts = append(opts, config.OptDatabasePassword(v))
	}
	if v := os.Getenv("GENES_DATABASE_SSL_MODE"); v != "" {
		opts = append(opts, config.OptDatabaseSSLMode(v))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// Connect returns a connected operator for the test database. The test
// is skipped in -short mode or when PostgreSQL is not reachable. The
// connection is closed when the test finishes.
func Connect(t *testing.T) db.Operator {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, GetTestDatabaseConfig()); err != nil {
		t.Skipf("PostgreSQL is not available: %v", err)
	}
	t.Cleanup(func() { op.Close() })
	return op
}
