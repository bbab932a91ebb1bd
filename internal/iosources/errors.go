package iosources

import (
	"fmt"
	"strings"

	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
)

// SourcesConfigError creates an error for when sources.yaml
// cannot be loaded.
func SourcesConfigError(path string, err error) error {
	msg := `Cannot load sources configuration

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - Invalid YAML format
  - Missing or duplicate source names
  - URL is not http(s)

<em>How to fix:</em>
  1. Check the file: <em>cat %s</em>
  2. Remove it to restore defaults on the next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.SourcesConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load sources config: %w", err),
	}
}

// SourcesNotFoundError is returned when requested sources are not
// present in sources.yaml.
func SourcesNotFoundError(names []string) error {
	list := strings.Join(names, ", ")
	msg := "Unknown sources: <em>%s</em>"
	return &gn.Error{
		Code: errcode.SourcesNotFoundError,
		Msg:  msg,
		Vars: []any{list},
		Err:  fmt.Errorf("sources not found in sources.yaml: %s", list),
	}
}
