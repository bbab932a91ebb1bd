package ioload

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/genes/internal/ioentrez"
	"github.com/gnames/genes/internal/iomanifest"
	"github.com/gnames/genes/internal/iotesting"
	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/genes/pkg/entrez"
	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/genes/pkg/manifest"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tables = entrez.Tables{
	Genes: []entrez.Gene{
		{EntrezGeneID: 1, Symbol: "A1BG", Chromosome: "19", TypeOfGene: "protein-coding"},
		{EntrezGeneID: 6, Symbol: "ASMTL", Chromosome: "X|Y", TypeOfGene: "protein-coding"},
		{EntrezGeneID: 9, Symbol: "LOC9", TypeOfGene: "ncRNA"},
	},
	Updates: []entrez.Update{{OldEntrezGeneID: 100, NewEntrezGeneID: 1}},
	ChrSymbol: []entrez.ChrSymbol{
		{Chromosome: "19", Symbol: "A1BG", EntrezGeneID: 1},
		{Chromosome: "X", Symbol: "ASMTL", EntrezGeneID: 6},
		{Chromosome: "Y", Symbol: "ASMTL", EntrezGeneID: 6},
	},
	Xrefs: []entrez.Xref{{EntrezGeneID: 1, Resource: "HGNC", Identifier: "HGNC:5"}},
}

var versions = manifest.New().With("gene_info", manifest.Version{
	URL:       "https://example.org/gene_info.gz",
	File:      "gene_info.gz",
	Retrieved: "2026-10-01T10:00:00Z",
	SHA256:    "abc",
})

func writeTable[T ioentrez.Rower](t *testing.T, path string, header []string, rows []T) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, ioentrez.WriteTable(f, header, rows))
	require.NoError(t, f.Close())
}

func publish(t *testing.T, withXrefs bool) string {
	t.Helper()
	dir := t.TempDir()
	writeTable(t, filepath.Join(dir, ioentrez.GenesFile), entrez.GenesHeader, tables.Genes)
	writeTable(t, filepath.Join(dir, ioentrez.UpdaterFile), entrez.UpdaterHeader, tables.Updates)
	writeTable(t, filepath.Join(dir, ioentrez.ChrSymbolFile), entrez.ChrSymbolHeader, tables.ChrSymbol)
	if withXrefs {
		writeTable(t, filepath.Join(dir, ioentrez.XrefsFile), entrez.XrefsHeader, tables.Xrefs)
	}
	require.NoError(t, iomanifest.Write(dir, versions))
	return dir
}

func TestReadPublished(t *testing.T) {
	dir := publish(t, true)

	pub, err := readPublished(dir)
	require.NoError(t, err)
	assert.Equal(t, tables, pub.tables)
	assert.Equal(t, versions, pub.manifest)

	srcs := copySources(pub)
	require.Len(t, srcs, 5)
	assert.Equal(t, "genes", srcs[0].table)
	assert.Equal(t, []any{9, "LOC9", "", "ncRNA"}, srcs[0].rows[2])
	assert.Equal(t, "raw_versions", srcs[4].table)
	assert.Equal(t,
		[]any{"gene_info", "https://example.org/gene_info.gz", "gene_info.gz",
			"2026-10-01T10:00:00Z", "", "abc"},
		srcs[4].rows[0])
	for _, v := range srcs {
		for _, row := range v.rows {
			assert.Len(t, row, len(v.columns), v.table)
		}
	}
}

func TestReadPublishedOptional(t *testing.T) {
	dir := publish(t, false)
	require.NoError(t, os.Remove(iomanifest.Path(dir)))

	pub, err := readPublished(dir)
	require.NoError(t, err)
	assert.Empty(t, pub.tables.Xrefs)
	assert.True(t, pub.manifest.IsEmpty())
}

func TestReadPublishedMissing(t *testing.T) {
	_, err := readPublished(t.TempDir())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ProcessRawFileError, gnErr.Code)
}

func TestLoad(t *testing.T) {
	op := iotesting.Connect(t)
	ctx := context.Background()

	cfg := iotesting.GetTestConfig()
	cfg.Update([]config.Option{config.OptDataDir(publish(t, true))})

	l := New(cfg, op)
	stats, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Genes)
	assert.Equal(t, int64(1), stats.Updates)
	assert.Equal(t, int64(3), stats.ChrSymbols)
	assert.Equal(t, int64(1), stats.Xrefs)
	assert.Equal(t, int64(1), stats.Versions)

	// loading again replaces the content
	stats, err = l.Load(ctx)
	require.NoError(t, err)

	var count int64
	err = op.Pool().QueryRow(ctx, "SELECT count(*) FROM genes").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, stats.Genes, count)

	var id int
	err = op.Pool().QueryRow(ctx,
		"SELECT entrez_gene_id FROM chromosome_symbols WHERE chromosome = $1 AND symbol = $2",
		"Y", "ASMTL").Scan(&id)
	require.NoError(t, err)
	assert.Equal(t, 6, id)
}
