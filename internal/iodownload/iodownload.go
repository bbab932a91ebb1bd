// Package iodownload implements the genes.Downloader: it fetches raw
// source files into the raw directory and keeps versions.json current.
package iodownload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/genes/internal/iofetch"
	"github.com/gnames/genes/internal/iofs"
	"github.com/gnames/genes/internal/iomanifest"
	"github.com/gnames/genes/internal/iosources"
	genes "github.com/gnames/genes/pkg"
	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/genes/pkg/manifest"
	"github.com/gnames/genes/pkg/sources"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

type downloader struct {
	cfg     *config.Config
	sources sources.Sources
	client  *iofetch.Client
	now     func() time.Time
	// quiet disables the progress bar.
	quiet bool
}

// New creates a Downloader for sources listed in sources.yaml.
func New(cfg *config.Config, src sources.Sources) genes.Downloader {
	res := downloader{
		cfg:     cfg,
		sources: src,
		client: iofetch.NewClient(iofetch.Options{
			Timeout:   time.Duration(cfg.Download.Timeout) * time.Second,
			UserAgent: config.AppName + "/" + genes.Version,
		}),
		now: time.Now,
	}
	return &res
}

// Download fetches selected sources one by one. After every successful
// fetch the manifest entry of that source is replaced and versions.json
// is rewritten. The first failure stops the run.
func (d *downloader) Download(ctx context.Context) (manifest.Manifest, error) {
	start := time.Now()
	rawDir := d.cfg.RawDir

	srcs, err := iosources.Select(d.sources, d.cfg.Download.Sources)
	if err != nil {
		return manifest.New(), err
	}

	if err = iofs.EnsureDir(rawDir); err != nil {
		return manifest.New(), err
	}

	m, ok, err := iomanifest.Read(rawDir)
	if err != nil {
		return m, err
	}
	if !ok {
		slog.Info("No version manifest yet", "dir", rawDir)
	}

	for _, src := range srcs {
		if err = ctx.Err(); err != nil {
			return m, FetchError(src.Name, src.URL, err)
		}

		gn.Info("Downloading <em>%s</em>", src.Name)
		v, err := d.fetch(ctx, rawDir, src)
		if err != nil {
			slog.Error("Download failed", "source", src.Name, "url", src.URL,
				"error", err)
			return m, err
		}

		m = m.With(src.Name, v)
		if err = iomanifest.Write(rawDir, m); err != nil {
			return m, err
		}
		slog.Info("Source downloaded",
			"source", src.Name,
			"file", v.File,
			"modified", v.Modified,
			"sha256", v.SHA256,
		)
	}

	gn.Info("Downloaded %d source(s) to <em>%s</em> in %s",
		len(srcs), rawDir,
		gnfmt.TimeString(time.Since(start).Seconds()))
	return m, nil
}

// fetch streams one source into a temporary file next to its destination,
// computing the SHA-256 of the content on the way.
func (d *downloader) fetch(
	ctx context.Context,
	rawDir string,
	src sources.RawSourceConfig,
) (manifest.Version, error) {
	var res manifest.Version
	path := filepath.Join(rawDir, src.File)

	resp, err := d.client.Get(ctx, src.URL)
	if err != nil {
		return res, FetchError(src.Name, src.URL, err)
	}
	defer resp.Body.Close()
	retrieved := d.now()

	tmp, err := iofs.CreateTemp(path)
	if err != nil {
		return res, WriteError(src.Name, path, err)
	}
	defer tmp.Discard()

	var body io.Reader = resp.Body
	if !d.quiet {
		bar := pb.Full.Start64(max(resp.Size, 0))
		bar.Set("prefix", src.Name+": ")
		bar.Set(pb.Bytes, true)
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
		body = bar.NewProxyReader(resp.Body)
	}

	hash := sha256.New()
	size, err := io.Copy(io.MultiWriter(tmp, hash), body)
	if err != nil {
		return res, FetchError(src.Name, src.URL, err)
	}

	if err = tmp.Commit(); err != nil {
		return res, WriteError(src.Name, path, err)
	}

	gn.Info("Saved <em>%s</em> (%s)", path, humanize.Bytes(uint64(size)))

	res = manifest.Version{
		URL:       src.URL,
		File:      src.File,
		Retrieved: manifest.Timestamp(retrieved),
		SHA256:    hex.EncodeToString(hash.Sum(nil)),
	}
	if !resp.LastModified.IsZero() {
		res.Modified = manifest.Timestamp(resp.LastModified)
	}
	return res, nil
}
