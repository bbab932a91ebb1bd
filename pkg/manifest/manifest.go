// Package manifest describes the version manifest of raw data.
//
// A Manifest maps a raw source name to the record of when that source
// was retrieved. It is a plain value: the downloader returns an updated
// copy after each successful fetch, the processor receives it as input
// and hands it back with its results. Reading and writing versions.json
// happens in internal/iomanifest.
package manifest

import (
	"maps"
	"slices"
	"time"
)

// FileName is the name of the persisted manifest, both in the raw
// directory and next to the published tables.
const FileName = "versions.json"

// TimeFormat is used for all timestamps in the manifest.
const TimeFormat = time.RFC3339

// Manifest is the version record of all downloaded raw sources.
type Manifest struct {
	Sources map[string]Version `json:"sources"`
}

// Version is the provenance of one raw file.
type Version struct {
	// URL the file was fetched from.
	URL string `json:"url"`

	// File is the file name inside the raw directory.
	File string `json:"file"`

	// Retrieved is the UTC time of the download.
	Retrieved string `json:"retrieved"`

	// Modified is the upstream modification time, if the server
	// reported one.
	Modified string `json:"modified,omitempty"`

	// SHA256 of the downloaded content.
	SHA256 string `json:"sha256,omitempty"`
}

// New creates an empty Manifest.
func New() Manifest {
	return Manifest{Sources: make(map[string]Version)}
}

// With returns a copy of the manifest where the entry for name is
// replaced by v. The receiver is not modified.
func (m Manifest) With(name string, v Version) Manifest {
	res := Manifest{Sources: make(map[string]Version, len(m.Sources)+1)}
	maps.Copy(res.Sources, m.Sources)
	res.Sources[name] = v
	return res
}

// Get returns the entry for a source.
func (m Manifest) Get(name string) (Version, bool) {
	v, ok := m.Sources[name]
	return v, ok
}

// Names returns sorted source names.
func (m Manifest) Names() []string {
	return slices.Sorted(maps.Keys(m.Sources))
}

// IsEmpty is true when no source was ever recorded.
func (m Manifest) IsEmpty() bool {
	return len(m.Sources) == 0
}

// Timestamp formats t for the manifest.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}
