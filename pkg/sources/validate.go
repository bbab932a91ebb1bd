package sources

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Validate checks the configuration for errors and applies defaults.
func (c *SourcesConfig) Validate() error {
	if len(c.RawSources) == 0 {
		return fmt.Errorf("no raw sources specified in configuration")
	}

	names := make(map[string]struct{})
	files := make(map[string]struct{})
	for i := range c.RawSources {
		warnings, err := c.RawSources[i].Validate()
		if err != nil {
			return fmt.Errorf("raw source %d: %w", i+1, err)
		}
		c.Warnings = append(c.Warnings, warnings...)

		src := c.RawSources[i]
		if _, ok := names[src.Name]; ok {
			return fmt.Errorf("raw source %d: duplicate name '%s'", i+1, src.Name)
		}
		names[src.Name] = struct{}{}

		if _, ok := files[src.File]; ok {
			return fmt.Errorf("raw source %d: duplicate file '%s'", i+1, src.File)
		}
		files[src.File] = struct{}{}
	}

	for _, v := range []string{GeneInfo, GeneHistory} {
		if _, ok := names[v]; !ok {
			c.Warnings = append(c.Warnings, ValidationWarning{
				Source:     v,
				Field:      "name",
				Message:    fmt.Sprintf("source '%s' is not configured", v),
				Suggestion: "processing needs both gene_info and gene_history",
			})
		}
	}

	return nil
}

// Validate checks a single raw source. File name defaults to the last
// element of the URL path.
func (s *RawSourceConfig) Validate() ([]ValidationWarning, error) {
	var warnings []ValidationWarning

	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if !IsValidURL(s.URL) {
		return nil, fmt.Errorf("url '%s' must be an http(s) URL", s.URL)
	}

	if s.File == "" {
		u, _ := url.Parse(s.URL)
		s.File = path.Base(u.Path)
		warnings = append(warnings, ValidationWarning{
			Source:     s.Name,
			Field:      "file",
			Message:    "file is not set, using " + s.File,
			Suggestion: "set 'file' to keep raw file names stable",
		})
	}

	if s.File != filepath.Base(s.File) || s.File == "." || s.File == "/" {
		return nil, fmt.Errorf("file '%s' must be a plain file name", s.File)
	}

	if s.File == "versions.json" {
		return nil, fmt.Errorf("file name 'versions.json' is reserved")
	}

	return warnings, nil
}

// IsValidURL checks if a string is a valid URL.
func IsValidURL(str string) bool {
	u, err := url.Parse(str)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != ""
}
