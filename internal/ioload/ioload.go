// Package ioload implements the genes.Loader. It copies published tables
// into PostgreSQL, replacing the previous content in one transaction.
package ioload

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/genes/internal/iodb"
	"github.com/gnames/genes/internal/ioentrez"
	"github.com/gnames/genes/internal/iomanifest"
	"github.com/gnames/genes/internal/ioschema"
	genes "github.com/gnames/genes/pkg"
	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/genes/pkg/db"
	"github.com/gnames/genes/pkg/entrez"
	"github.com/gnames/genes/pkg/manifest"
	"github.com/gnames/genes/pkg/schema"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5"
)

type loader struct {
	cfg      *config.Config
	operator db.Operator
	schema   db.SchemaManager
}

// New creates a Loader. The operator must be connected before Load.
func New(cfg *config.Config, op db.Operator) genes.Loader {
	res := loader{
		cfg:      cfg,
		operator: op,
		schema:   ioschema.NewManager(op),
	}
	return &res
}

// published is the content of the data directory.
type published struct {
	tables   entrez.Tables
	manifest manifest.Manifest
}

// copySource is the input of one CopyFrom call.
type copySource struct {
	table   string
	columns []string
	rows    [][]any
}

// Load reads published tables, migrates the schema and refills every
// table in a single transaction.
func (l *loader) Load(ctx context.Context) (genes.LoadStats, error) {
	var stats genes.LoadStats
	start := time.Now()

	pub, err := readPublished(l.cfg.DataDir)
	if err != nil {
		return stats, err
	}

	if err = l.schema.Migrate(ctx); err != nil {
		return stats, err
	}

	srcs := copySources(pub)
	counts, err := l.copyTables(ctx, srcs)
	if err != nil {
		return stats, err
	}

	// content is committed, ANALYZE failure only warns
	if err = l.schema.Analyze(ctx); err != nil {
		slog.Warn("Cannot update table statistics", "error", err)
	}

	stats = genes.LoadStats{
		Genes:      counts[schema.Gene{}.TableName()],
		Updates:    counts[schema.GeneUpdate{}.TableName()],
		ChrSymbols: counts[schema.ChromosomeSymbol{}.TableName()],
		Xrefs:      counts[schema.GeneXref{}.TableName()],
		Versions:   counts[schema.RawVersion{}.TableName()],
	}

	slog.Info("Tables loaded",
		"database", l.cfg.Database.Database,
		"genes", stats.Genes,
		"updates", stats.Updates,
		"chromosome_symbols", stats.ChrSymbols,
		"xrefs", stats.Xrefs,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	gn.Info("Loaded %s genes into <em>%s</em> in %s",
		humanize.Comma(stats.Genes),
		l.cfg.Database.Database,
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return stats, nil
}

// copyTables truncates all tables and fills them with CopyFrom. Nothing
// is changed if any step fails.
func (l *loader) copyTables(
	ctx context.Context,
	srcs []copySource,
) (map[string]int64, error) {
	pool := l.operator.Pool()
	if pool == nil {
		return nil, iodb.NotConnectedError()
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, LoadError("transaction", err)
	}
	defer tx.Rollback(ctx)

	truncate := "TRUNCATE " + strings.Join(schema.TableNames(), ", ")
	if _, err = tx.Exec(ctx, truncate); err != nil {
		return nil, LoadError("truncate", err)
	}

	res := make(map[string]int64, len(srcs))
	for _, v := range srcs {
		n, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{v.table},
			v.columns,
			pgx.CopyFromRows(v.rows),
		)
		if err != nil {
			return nil, LoadError(v.table, err)
		}
		slog.Debug("Table copied", "table", v.table, "rows", n)
		res[v.table] = n
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, LoadError("commit", err)
	}
	return res, nil
}

// readPublished reads tables from the data directory. The xrefs table
// and versions.json are optional.
func readPublished(dir string) (published, error) {
	var res published
	var err error

	path := func(name string) string { return filepath.Join(dir, name) }

	if res.tables.Genes, err = ioentrez.ReadGenes(path(ioentrez.GenesFile)); err != nil {
		return res, err
	}
	if res.tables.Updates, err = ioentrez.ReadUpdates(path(ioentrez.UpdaterFile)); err != nil {
		return res, err
	}
	if res.tables.ChrSymbol, err = ioentrez.ReadChrSymbols(path(ioentrez.ChrSymbolFile)); err != nil {
		return res, err
	}

	xrefs := path(ioentrez.XrefsFile)
	if _, err = os.Stat(xrefs); err == nil {
		if res.tables.Xrefs, err = ioentrez.ReadXrefs(xrefs); err != nil {
			return res, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return res, err
	}

	var ok bool
	if res.manifest, ok, err = iomanifest.Read(dir); err != nil {
		return res, err
	}
	if !ok {
		slog.Warn("Published tables have no version manifest", "dir", dir)
	}
	return res, nil
}

func copySources(pub published) []copySource {
	t := pub.tables

	genesRows := make([][]any, len(t.Genes))
	for i, v := range t.Genes {
		genesRows[i] = []any{v.EntrezGeneID, v.Symbol, v.Chromosome, v.TypeOfGene}
	}

	updRows := make([][]any, len(t.Updates))
	for i, v := range t.Updates {
		updRows[i] = []any{v.OldEntrezGeneID, v.NewEntrezGeneID}
	}

	chrRows := make([][]any, len(t.ChrSymbol))
	for i, v := range t.ChrSymbol {
		chrRows[i] = []any{v.Chromosome, v.Symbol, v.EntrezGeneID}
	}

	xrefRows := make([][]any, len(t.Xrefs))
	for i, v := range t.Xrefs {
		xrefRows[i] = []any{v.EntrezGeneID, v.Resource, v.Identifier}
	}

	var verRows [][]any
	for _, name := range pub.manifest.Names() {
		v, _ := pub.manifest.Get(name)
		verRows = append(verRows,
			[]any{name, v.URL, v.File, v.Retrieved, v.Modified, v.SHA256})
	}

	return []copySource{
		{
			table:   schema.Gene{}.TableName(),
			columns: []string{"entrez_gene_id", "symbol", "chromosome", "type_of_gene"},
			rows:    genesRows,
		},
		{
			table:   schema.GeneUpdate{}.TableName(),
			columns: []string{"old_entrez_gene_id", "new_entrez_gene_id"},
			rows:    updRows,
		},
		{
			table:   schema.ChromosomeSymbol{}.TableName(),
			columns: []string{"chromosome", "symbol", "entrez_gene_id"},
			rows:    chrRows,
		},
		{
			table:   schema.GeneXref{}.TableName(),
			columns: []string{"entrez_gene_id", "resource", "identifier"},
			rows:    xrefRows,
		},
		{
			table:   schema.RawVersion{}.TableName(),
			columns: []string{"source", "url", "file", "retrieved", "modified", "sha256"},
			rows:    verRows,
		},
	}
}
