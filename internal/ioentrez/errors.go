package ioentrez

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
)

// RawFileError is returned when an input file cannot be opened or read.
func RawFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ProcessRawFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

// SchemaError is returned when the header of a file lacks required
// columns.
func SchemaError(path string, missing []string) error {
	cols := strings.Join(missing, ", ")
	msg := "File <em>%s</em> has no required columns: <em>%s</em>"
	return &gn.Error{
		Code: errcode.ProcessSchemaError,
		Msg:  msg,
		Vars: []any{path, cols},
		Err:  fmt.Errorf("%s: missing columns: %s", path, cols),
	}
}

// ParseError is returned for a malformed row. Line numbers start at 1
// and include the header.
func ParseError(path string, line int, err error) error {
	msg := "Malformed data in <em>%s</em> at line <em>%d</em>"
	return &gn.Error{
		Code: errcode.ProcessParseError,
		Msg:  msg,
		Vars: []any{path, line},
		Err:  fmt.Errorf("%s:%d: %w", path, line, err),
	}
}
