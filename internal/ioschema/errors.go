package ioschema

import (
	"fmt"

	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>How to fix:</em>
  1. Ensure database operator is connected
  2. Check database configuration`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// MigrateSchemaError creates an error for schema
// migration failures.
func MigrateSchemaError(err error) error {
	msg := `Cannot create or migrate gene tables

<em>Possible causes:</em>
  - Insufficient database permissions
  - Existing tables have incompatible columns

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Drop old tables and run <em>genes load</em> again`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// CollationError creates an error for collation
// setting failures.
func CollationError(table, column string, err error) error {
	msg := `Cannot set collation on <em>%s.%s</em>

<em>How to fix:</em>
  1. Ensure table was created successfully
  2. Check database user has ALTER permissions`

	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  msg,
		Vars: []any{table, column},
		Err: fmt.Errorf(
			"failed to set collation on %s.%s: %w",
			table, column, err),
	}
}

// AnalyzeError creates an error for failed ANALYZE of a table.
func AnalyzeError(table string, err error) error {
	msg := "Cannot update statistics of table <em>%s</em>"

	return &gn.Error{
		Code: errcode.SchemaAnalyzeError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to analyze %s: %w", table, err),
	}
}
