package ioentrez_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/genes/internal/ioentrez"
	"github.com/gnames/genes/pkg/entrez"
	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geneInfoHeader = "#tax_id\tGeneID\tSymbol\tLocusTag\tSynonyms\tdbXrefs\t" +
	"chromosome\tmap_location\tdescription\ttype_of_gene\n"

const geneHistoryHeader = "#tax_id\tGeneID\tDiscontinued_GeneID\t" +
	"Discontinued_Symbol\tDiscontinue_Date\n"

func writeGzip(t *testing.T, name, content string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

func TestReadGeneInfo(t *testing.T) {
	path := writeGzip(t, "gene_info.gz", geneInfoHeader+
		"9606\t1\tA1BG\t-\tA1B|ABG|GAB\tMIM:138670|HGNC:HGNC:5\t19\t19q13.43\talpha-1-B glycoprotein\tprotein-coding\n"+
		"9606\t6\tNONE\t-\t-\t-\t-\t-\tunplaced\tunknown\n"+
		"10090\t11287\tPzp\t-\t-\t-\t6\t-\tmouse gene\tprotein-coding\n")

	genes, err := ioentrez.ReadGeneInfo(path)
	require.NoError(t, err)
	require.Len(t, genes, 3)

	assert.Equal(t, entrez.Gene{
		EntrezGeneID: 1,
		Symbol:       "A1BG",
		Chromosome:   "19",
		TypeOfGene:   "protein-coding",
		TaxID:        9606,
		Synonyms:     []string{"A1B", "ABG", "GAB"},
		DBXrefs:      []string{"MIM:138670", "HGNC:HGNC:5"},
	}, genes[0])

	assert.Equal(t, "", genes[1].Chromosome)
	assert.Nil(t, genes[1].Synonyms)
	assert.Nil(t, genes[1].DBXrefs)
	assert.Equal(t, 10090, genes[2].TaxID)
}

func TestReadGeneInfoPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gene_info")
	err := os.WriteFile(path, []byte(geneInfoHeader+
		"9606\t2\tA2M\t-\t-\t-\t12\t-\t-\tprotein-coding\n"), 0644)
	require.NoError(t, err)

	genes, err := ioentrez.ReadGeneInfo(path)
	require.NoError(t, err)
	require.Len(t, genes, 1)
	assert.Equal(t, "A2M", genes[0].Symbol)
}

func TestReadGeneHistory(t *testing.T) {
	path := writeGzip(t, "gene_history.gz", geneHistoryHeader+
		"9606\t-\t4\tA12M1\t20050510\n"+
		"9606\t7\t8\tOLD8\t20080101\n")

	hist, err := ioentrez.ReadGeneHistory(path)
	require.NoError(t, err)
	assert.Equal(t, []entrez.HistoryRecord{
		{TaxID: 9606, GeneID: 0, DiscontinuedGeneID: 4,
			DiscontinuedSymbol: "A12M1", DiscontinueDate: "20050510"},
		{TaxID: 9606, GeneID: 7, DiscontinuedGeneID: 8,
			DiscontinuedSymbol: "OLD8", DiscontinueDate: "20080101"},
	}, hist)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    gn.ErrorCode
		inErr   string
	}{
		{
			name:    "missing column",
			content: "#tax_id\tGeneID\tDiscontinued_GeneID\n9606\t1\t2\n",
			code:    errcode.ProcessSchemaError,
			inErr:   "Discontinued_Symbol",
		},
		{
			name:    "short row",
			content: geneHistoryHeader + "9606\t1\t2\tX\t20000101\n9606\t1\t3\n",
			code:    errcode.ProcessParseError,
			inErr:   ":3:",
		},
		{
			name:    "not an integer",
			content: geneHistoryHeader + "9606\t1\tabc\tX\t20000101\n",
			code:    errcode.ProcessParseError,
			inErr:   "Discontinued_GeneID",
		},
		{
			name:    "empty",
			content: "",
			code:    errcode.ProcessParseError,
			inErr:   "no header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeGzip(t, "gene_history.gz", tt.content)
			_, err := ioentrez.ReadGeneHistory(path)
			assert.Equal(t, tt.code, errCode(t, err))
			assert.Contains(t, err.(*gn.Error).Err.Error(), tt.inErr)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := ioentrez.ReadGeneInfo(filepath.Join(t.TempDir(), "none.gz"))
	assert.Equal(t, errcode.ProcessRawFileError, errCode(t, err))
}

func TestReadTruncatedGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(geneInfoHeader +
		strings.Repeat("9606\t2\tA2M\t-\t-\t-\t12\t-\t-\tprotein-coding\n", 1000)))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "gene_info.gz")
	data := buf.Bytes()
	require.NoError(t, os.WriteFile(path, data[:len(data)-20], 0644))

	_, err = ioentrez.ReadGeneInfo(path)
	assert.Error(t, err)
}

func TestTables(t *testing.T) {
	dir := t.TempDir()
	genes := []entrez.Gene{
		{EntrezGeneID: 1, Symbol: "A1BG", Chromosome: "19", TypeOfGene: "protein-coding"},
		{EntrezGeneID: 6, Symbol: "NONE", TypeOfGene: "unknown"},
	}
	updates := []entrez.Update{{OldEntrezGeneID: 8, NewEntrezGeneID: 1}}
	chr := []entrez.ChrSymbol{{Chromosome: "19", Symbol: "A1BG", EntrezGeneID: 1}}
	xrefs := []entrez.Xref{{EntrezGeneID: 1, Resource: "HGNC", Identifier: "HGNC:5"}}

	write := func(name string, fn func(*os.File) error) string {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, fn(f))
		require.NoError(t, f.Close())
		return path
	}

	genesPath := write(ioentrez.GenesFile, func(f *os.File) error {
		return ioentrez.WriteTable(f, entrez.GenesHeader, genes)
	})
	data, err := os.ReadFile(genesPath)
	require.NoError(t, err)
	assert.Equal(t,
		"entrez_gene_id\tsymbol\tchromosome\ttype_of_gene\n"+
			"1\tA1BG\t19\tprotein-coding\n"+
			"6\tNONE\t\tunknown\n",
		string(data))

	gotGenes, err := ioentrez.ReadGenes(genesPath)
	require.NoError(t, err)
	assert.Equal(t, genes, gotGenes)

	updPath := write(ioentrez.UpdaterFile, func(f *os.File) error {
		return ioentrez.WriteTable(f, entrez.UpdaterHeader, updates)
	})
	gotUpd, err := ioentrez.ReadUpdates(updPath)
	require.NoError(t, err)
	assert.Equal(t, updates, gotUpd)

	chrPath := write(ioentrez.ChrSymbolFile, func(f *os.File) error {
		return ioentrez.WriteTable(f, entrez.ChrSymbolHeader, chr)
	})
	gotChr, err := ioentrez.ReadChrSymbols(chrPath)
	require.NoError(t, err)
	assert.Equal(t, chr, gotChr)

	xrefPath := write(ioentrez.XrefsFile, func(f *os.File) error {
		return ioentrez.WriteTable(f, entrez.XrefsHeader, xrefs)
	})
	gotXrefs, err := ioentrez.ReadXrefs(xrefPath)
	require.NoError(t, err)
	assert.Equal(t, xrefs, gotXrefs)
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := ioentrez.WriteTable(&buf, entrez.UpdaterHeader, []entrez.Update(nil))
	require.NoError(t, err)
	assert.Equal(t, "old_entrez_gene_id\tnew_entrez_gene_id\n", buf.String())
}
