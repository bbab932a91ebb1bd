// Package iomanifest reads and writes versions.json.
package iomanifest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/gnames/genes/internal/iofs"
	"github.com/gnames/genes/pkg/manifest"
	"github.com/gnames/gnfmt"
	jsoniter "github.com/json-iterator/go"
)

// Path returns the location of versions.json in dir.
func Path(dir string) string {
	return filepath.Join(dir, manifest.FileName)
}

// Read loads versions.json from dir. The boolean is false and the
// manifest is empty when the file does not exist.
func Read(dir string) (manifest.Manifest, bool, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return manifest.New(), false, nil
	}
	if err != nil {
		return manifest.New(), false, ReadError(path, err)
	}

	var res manifest.Manifest
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		return manifest.New(), false, ReadError(path, err)
	}
	if res.Sources == nil {
		res = manifest.New()
	}
	return res, true, nil
}

// Write persists m as versions.json in dir, replacing the previous file
// atomically.
func Write(dir string, m manifest.Manifest) error {
	path := Path(dir)
	data, err := Encode(m)
	if err != nil {
		return WriteError(path, err)
	}
	if err = iofs.WriteFileAtomic(path, data); err != nil {
		return WriteError(path, err)
	}
	return nil
}

// Encode renders m the way it is stored on disk. Sources are sorted by
// name, so equal manifests always give equal bytes.
func Encode(m manifest.Manifest) ([]byte, error) {
	if m.Sources == nil {
		m = manifest.New()
	}
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.
		MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	return data, nil
}
