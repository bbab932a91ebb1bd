package iodb

import (
	"fmt"

	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
)

// ConnectionError is returned when database connection fails.
type ConnectionError struct {
	error
	gnlib.MessageBase
}

// NewConnectionError creates a connection error with user-friendly message.
func NewConnectionError(host string, port int, database, user string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Database Connection Failed</title>

<warning>Could not connect to PostgreSQL database.</warning>

<em>Possible causes:</em>
  • PostgreSQL is not running
  • Database does not exist
  • Database configuration is incorrect

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>

  2. Create the database if needed:
     <em>createdb -h %s -U %s %s</em>

  3. Check your configuration file:
     <em>~/.config/genes/config.yaml</em>
     or GENES_DATABASE_* environment variables

  4. Review connection settings:
     Host: %s
     Port: %d
     Database: %s
     User: %s
`,
		[]any{
			host, port,
			host, user, database,
			host, port, database, user,
		},
	)

	return ConnectionError{
		error:       fmt.Errorf("failed to connect to %s:%d/%s: %w", host, port, database, cause),
		MessageBase: userBase,
	}
}

// Unwrap gives access to the cause of the connection failure.
func (e ConnectionError) Unwrap() error {
	return e.error
}

// NotConnectedError is returned when an operation is attempted
// before Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableExistsCheckError is returned when the table lookup query fails.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"

	return &gn.Error{
		Code: errcode.DBSchemaError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}
