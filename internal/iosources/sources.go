// Package iosources loads sources.yaml from the configuration directory.
package iosources

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/genes/pkg/sources"
	"gopkg.in/yaml.v3"
)

type iosources struct {
	cfg *config.Config
}

func New(cfg *config.Config) sources.Sources {
	res := iosources{cfg: cfg}
	return &res
}

func (s *iosources) Load() (*sources.SourcesConfig, error) {
	sourcesPath := config.SourcesFilePath(s.cfg.HomeDir)
	sourcesConfig, err := loadSourcesConfig(sourcesPath)
	if err != nil {
		return nil, SourcesConfigError(sourcesPath, err)
	}
	return sourcesConfig, nil
}

// Select loads sources.yaml and keeps only the sources with given names.
// Empty names keep all sources.
func Select(s sources.Sources, names []string) ([]sources.RawSourceConfig, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}

	res, missing := cfg.Filter(names)
	if len(missing) > 0 {
		return nil, SourcesNotFoundError(missing)
	}
	return res, nil
}

// loadSourcesConfig reads, parses and validates sources.yaml.
func loadSourcesConfig(path string) (*sources.SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources config file: %w", err)
	}

	var cfg sources.SourcesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sources config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for _, w := range cfg.Warnings {
		slog.Warn("Source configuration warning",
			"source", w.Source,
			"field", w.Field,
			"message", w.Message,
			"suggestion", w.Suggestion)
	}

	return &cfg, nil
}
