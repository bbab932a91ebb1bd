package iodownload

import (
	"errors"
	"fmt"

	"github.com/gnames/genes/internal/iofetch"
	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
)

// FetchError is returned when a source cannot be fetched. Errors reported
// by the server get DownloadStatusError code.
func FetchError(name, url string, err error) error {
	code := errcode.DownloadFetchError
	if isStatusError(err) {
		code = errcode.DownloadStatusError
	}
	msg := `Cannot download <em>%s</em>

<em>URL:</em> %s

Files downloaded earlier in this run are kept.
The previous version of this source is unchanged.`
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{name, url},
		Err:  fmt.Errorf("download of %s failed: %w", url, err),
	}
}

// WriteError is returned when a downloaded file cannot be saved.
func WriteError(name, path string, err error) error {
	msg := "Cannot save <em>%s</em> to <em>%s</em>"
	return &gn.Error{
		Code: errcode.DownloadWriteError,
		Msg:  msg,
		Vars: []any{name, path},
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}

func isStatusError(err error) bool {
	for _, v := range []error{
		iofetch.ErrNotFound,
		iofetch.ErrForbidden,
		iofetch.ErrUnauthorized,
		iofetch.ErrServerError,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
