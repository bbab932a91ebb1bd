package iomanifest

import (
	"fmt"

	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
)

func ReadError(path string, err error) error {
	msg := "Cannot read version manifest <em>%s</em>"
	return &gn.Error{
		Code: errcode.ManifestReadError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read manifest %s: %w", path, err),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write version manifest <em>%s</em>"
	return &gn.Error{
		Code: errcode.ManifestWriteError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write manifest %s: %w", path, err),
	}
}
