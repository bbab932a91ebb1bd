// Package iofs provides file system helpers: application directories,
// default configuration files, and atomic file publishing.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/gnsys"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed sources.yaml
var SourcesYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}

	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates a work directory (raw or data dir) if it is missing.
func EnsureDir(dir string) error {
	if err := gnsys.MakeDir(dir); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

func EnsureSourcesFile(homeDir string) error {
	return ensureFile(config.SourcesFilePath(homeDir), SourcesYAML)
}

// ensureFile writes content to path unless the file exists already.
func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}
