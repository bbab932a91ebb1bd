// Package ioprocess implements the genes.Processor. It reads raw NCBI
// files and the version manifest, derives the gene tables and publishes
// them to the data directory.
package ioprocess

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/genes/internal/ioentrez"
	"github.com/gnames/genes/internal/iofs"
	"github.com/gnames/genes/internal/iomanifest"
	"github.com/gnames/genes/internal/iosources"
	genes "github.com/gnames/genes/pkg"
	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/genes/pkg/entrez"
	"github.com/gnames/genes/pkg/manifest"
	"github.com/gnames/genes/pkg/sources"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

type processor struct {
	cfg     *config.Config
	sources sources.Sources
	// info and warn print messages to the user.
	info, warn func(msg string, vars ...any)
}

// New creates a Processor reading raw files named in sources.yaml.
func New(cfg *config.Config, src sources.Sources) genes.Processor {
	res := processor{
		cfg:     cfg,
		sources: src,
		info:    func(msg string, vars ...any) { gn.Info(msg, vars...) },
		warn:    func(msg string, vars ...any) { gn.Warn(msg, vars...) },
	}
	return &res
}

// Process derives the tables and publishes them. Data-integrity problems
// become warnings, summarized after publishing; unreadable or malformed
// input stops the run before anything is published.
func (p *processor) Process(ctx context.Context) (entrez.Result, error) {
	var res entrez.Result
	start := time.Now()

	in, err := p.input(ctx)
	if err != nil {
		return res, err
	}

	res = entrez.Curate(in)
	if err = res.Tables.Check(); err != nil {
		return res, IntegrityError(err)
	}
	logWarnings(res.Warnings)

	if err = ctx.Err(); err != nil {
		return res, CancelledError(err)
	}

	if err = p.publish(res); err != nil {
		return res, err
	}

	t := res.Tables
	slog.Info("Tables published",
		"dir", p.cfg.DataDir,
		"genes", len(t.Genes),
		"updates", len(t.Updates),
		"chromosome_symbols", len(t.ChrSymbol),
		"xrefs", len(t.Xrefs),
		"warnings", len(res.Warnings),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	p.info(
		"Published %s genes, %s updates, %s chromosome-symbol pairs to <em>%s</em> in %s",
		humanize.Comma(int64(len(t.Genes))),
		humanize.Comma(int64(len(t.Updates))),
		humanize.Comma(int64(len(t.ChrSymbol))),
		p.cfg.DataDir,
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	p.summarizeWarnings(res.Warnings)
	return res, nil
}

// input reads the manifest and raw files.
func (p *processor) input(ctx context.Context) (entrez.Input, error) {
	var res entrez.Input
	rawDir := p.cfg.RawDir

	sc, err := p.sources.Load()
	if err != nil {
		return res, err
	}
	infoSrc, okInfo := sc.ByName(sources.GeneInfo)
	histSrc, okHist := sc.ByName(sources.GeneHistory)
	if !okInfo || !okHist {
		var missing []string
		if !okInfo {
			missing = append(missing, sources.GeneInfo)
		}
		if !okHist {
			missing = append(missing, sources.GeneHistory)
		}
		return res, iosources.SourcesNotFoundError(missing)
	}

	m, ok, err := iomanifest.Read(rawDir)
	if err != nil {
		return res, err
	}
	if !ok {
		slog.Warn("Version manifest not found", "dir", rawDir)
	}

	infoPath := filepath.Join(rawDir, infoSrc.File)
	p.info("Reading <em>%s</em>", infoPath)
	geneRecs, err := ioentrez.ReadGeneInfo(infoPath)
	if err != nil {
		return res, err
	}
	if len(geneRecs) == 0 {
		slog.Warn("No gene records found", "path", infoPath)
	}
	slog.Info("Read gene_info", "path", infoPath, "records", len(geneRecs))

	if err = ctx.Err(); err != nil {
		return res, CancelledError(err)
	}

	histPath := filepath.Join(rawDir, histSrc.File)
	p.info("Reading <em>%s</em>", histPath)
	histRecs, err := ioentrez.ReadGeneHistory(histPath)
	if err != nil {
		return res, err
	}
	slog.Info("Read gene_history", "path", histPath, "records", len(histRecs))

	res = entrez.Input{
		Genes:    geneRecs,
		History:  histRecs,
		Manifest: m,
		Sources:  []string{sources.GeneInfo, sources.GeneHistory},
		Options: entrez.Options{
			TaxID:        p.cfg.Process.TaxID,
			WithSynonyms: p.cfg.WithSynonyms(),
			WithXrefs:    p.cfg.WithXrefs(),
		},
	}
	return res, nil
}

type output struct {
	file  string
	write func(io.Writer) error
}

func (p *processor) outputs(res entrez.Result) []output {
	t := res.Tables
	outs := []output{
		{ioentrez.GenesFile, func(w io.Writer) error {
			return ioentrez.WriteTable(w, entrez.GenesHeader, t.Genes)
		}},
		{ioentrez.UpdaterFile, func(w io.Writer) error {
			return ioentrez.WriteTable(w, entrez.UpdaterHeader, t.Updates)
		}},
		{ioentrez.ChrSymbolFile, func(w io.Writer) error {
			return ioentrez.WriteTable(w, entrez.ChrSymbolHeader, t.ChrSymbol)
		}},
	}
	if p.cfg.WithXrefs() {
		outs = append(outs, output{ioentrez.XrefsFile, func(w io.Writer) error {
			return ioentrez.WriteTable(w, entrez.XrefsHeader, t.Xrefs)
		}})
	}
	outs = append(outs, output{manifest.FileName, func(w io.Writer) error {
		data, err := iomanifest.Encode(res.Manifest)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}})
	return outs
}

// publish writes every output to a temporary file first. Published files
// are replaced only after all of them are written.
func (p *processor) publish(res entrez.Result) error {
	dataDir := p.cfg.DataDir
	if err := iofs.EnsureDir(dataDir); err != nil {
		return err
	}

	outs := p.outputs(res)
	tmps := make([]*iofs.TempFile, 0, len(outs))
	defer func() {
		for _, v := range tmps {
			v.Discard()
		}
	}()

	for _, v := range outs {
		path := filepath.Join(dataDir, v.file)
		tmp, err := iofs.CreateTemp(path)
		if err != nil {
			return PublishError(path, err)
		}
		tmps = append(tmps, tmp)
		if err = v.write(tmp); err != nil {
			return PublishError(path, err)
		}
	}

	for _, v := range tmps {
		if err := v.Commit(); err != nil {
			return PublishError(v.Path(), err)
		}
	}

	if !p.cfg.WithXrefs() {
		path := filepath.Join(dataDir, ioentrez.XrefsFile)
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return PublishError(path, err)
		}
	}
	return nil
}

// logWarnings writes every warning to the log.
func logWarnings(ws []entrez.Warning) {
	for _, v := range ws {
		slog.Warn("Data integrity warning",
			"kind", v.Kind.String(),
			"id", v.ID,
			"message", v.Message,
		)
	}
}

// summarizeWarnings shows the user a count per warning kind.
func (p *processor) summarizeWarnings(ws []entrez.Warning) {
	for _, v := range entrez.CountWarnings(ws) {
		p.warn("%s <em>%s</em> warning(s), see the log for details",
			humanize.Comma(int64(v.Count)), v.Kind.String())
	}
}
