package genes

import (
	"context"

	"github.com/gnames/genes/pkg/entrez"
	"github.com/gnames/genes/pkg/manifest"
)

// Downloader fetches raw source files and records their versions.
type Downloader interface {
	// Download fetches configured sources in order. It stops at the first
	// failure. The returned manifest contains entries of every source
	// fetched so far, and it is persisted after each successful fetch.
	Download(ctx context.Context) (manifest.Manifest, error)
}

// Processor derives and publishes the gene tables from raw files.
type Processor interface {
	// Process reads raw files and the version manifest, curates them and
	// replaces published tables. Nothing is published on error.
	Process(ctx context.Context) (entrez.Result, error)
}

// Loader copies published tables into a database.
type Loader interface {
	// Load replaces database tables with the content of published tables
	// in one transaction.
	Load(ctx context.Context) (LoadStats, error)
}

// LoadStats reports the number of rows copied per table.
type LoadStats struct {
	Genes      int64
	Updates    int64
	ChrSymbols int64
	Xrefs      int64
	Versions   int64
}
