// Package ioschema implements db.SchemaManager with GORM AutoMigrate
// and plain SQL for the settings GORM does not cover.
package ioschema

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gnames/genes/pkg/db"
	"github.com/gnames/genes/pkg/schema"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type manager struct {
	operator db.Operator
}

// NewManager creates a SchemaManager. The operator must be connected
// before any method is called.
func NewManager(op db.Operator) db.SchemaManager {
	return &manager{operator: op}
}

// columnDef is a varchar column that gets "C" collation.
type columnDef struct {
	table, column string
	varchar       int
}

// collationSQL returns the statement that sets "C" collation on the column.
func (c columnDef) collationSQL() string {
	return fmt.Sprintf(
		`ALTER TABLE %s ALTER COLUMN %s TYPE VARCHAR(%d) COLLATE "C"`,
		c.table, c.column, c.varchar,
	)
}

// collated columns are compared and sorted byte by byte, the same way
// published tables are sorted.
var collated = []columnDef{
	{schema.Gene{}.TableName(), "symbol", 255},
	{schema.ChromosomeSymbol{}.TableName(), "chromosome", 50},
	{schema.ChromosomeSymbol{}.TableName(), "symbol", 255},
}

// Migrate creates or updates gene tables.
func (m *manager) Migrate(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Discard},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	if err = m.setCollation(ctx); err != nil {
		return err
	}

	slog.Debug("Schema migrated", "tables", schema.TableNames())
	return nil
}

func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	for _, col := range collated {
		if _, err := pool.Exec(ctx, col.collationSQL()); err != nil {
			return CollationError(col.table, col.column, err)
		}
	}
	return nil
}

// Analyze runs ANALYZE on every gene table. It must not run inside a
// transaction that is still filling the tables.
func (m *manager) Analyze(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	start := time.Now()
	for _, table := range schema.TableNames() {
		if _, err := pool.Exec(ctx, "ANALYZE "+table); err != nil {
			return AnalyzeError(table, err)
		}
	}

	slog.Info("ANALYZE completed",
		"duration", gnfmt.TimeString(time.Since(start).Seconds()))
	return nil
}
