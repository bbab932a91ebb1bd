package ioload

import (
	"fmt"

	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
)

// LoadError is returned when a table cannot be refilled. The
// transaction is rolled back, the database keeps its previous content.
func LoadError(table string, err error) error {
	msg := `Cannot load table <em>%s</em>

Database tables keep their previous content.`

	return &gn.Error{
		Code: errcode.DBLoadError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to load %s: %w", table, err),
	}
}
