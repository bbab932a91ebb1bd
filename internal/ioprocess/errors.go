package ioprocess

import (
	"fmt"

	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
)

// PublishError is returned when a table cannot be written. Published
// files stay as they were before the run.
func PublishError(path string, err error) error {
	msg := `Cannot publish <em>%s</em>

Previously published tables are unchanged.`
	return &gn.Error{
		Code: errcode.ProcessPublishError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot publish %s: %w", path, err),
	}
}

// IntegrityError is returned when derived tables violate referential
// integrity.
func IntegrityError(err error) error {
	msg := "Derived tables are inconsistent: <em>%s</em>"
	return &gn.Error{
		Code: errcode.ProcessPublishError,
		Msg:  msg,
		Vars: []any{err.Error()},
		Err:  fmt.Errorf("integrity check failed: %w", err),
	}
}

// CancelledError is returned when processing is interrupted.
func CancelledError(err error) error {
	msg := "Processing was cancelled, nothing was published"
	return &gn.Error{
		Code: errcode.ProcessCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("processing cancelled: %w", err),
	}
}
