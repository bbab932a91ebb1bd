package ioentrez

import (
	"bufio"
	"io"
	"strings"

	"github.com/gnames/genes/pkg/entrez"
)

// Published table file names.
const (
	GenesFile     = "genes.tsv"
	UpdaterFile   = "updater.tsv"
	ChrSymbolFile = "chromosome-symbol-map.tsv"
	XrefsFile     = "genes-xrefs.tsv"
)

// Rower is a record of a published table.
type Rower interface {
	Row() []string
}

// WriteTable writes the header and rows as tab-separated lines.
func WriteTable[T Rower](w io.Writer, header []string, rows []T) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(header, "\t") + "\n"); err != nil {
		return err
	}
	for _, v := range rows {
		if _, err := bw.WriteString(strings.Join(v.Row(), "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadGenes reads a published genes.tsv.
func ReadGenes(path string) ([]entrez.Gene, error) {
	return readTable(path, entrez.GenesHeader,
		func(t *tsvFile, f []string) (entrez.Gene, error) {
			id, err := t.num(f, "entrez_gene_id")
			return entrez.Gene{
				EntrezGeneID: id,
				Symbol:       f[t.cols["symbol"]],
				Chromosome:   f[t.cols["chromosome"]],
				TypeOfGene:   f[t.cols["type_of_gene"]],
			}, err
		})
}

// ReadUpdates reads a published updater.tsv.
func ReadUpdates(path string) ([]entrez.Update, error) {
	return readTable(path, entrez.UpdaterHeader,
		func(t *tsvFile, f []string) (entrez.Update, error) {
			var res entrez.Update
			var err error
			if res.OldEntrezGeneID, err = t.num(f, "old_entrez_gene_id"); err != nil {
				return res, err
			}
			res.NewEntrezGeneID, err = t.num(f, "new_entrez_gene_id")
			return res, err
		})
}

// ReadChrSymbols reads a published chromosome-symbol-map.tsv.
func ReadChrSymbols(path string) ([]entrez.ChrSymbol, error) {
	return readTable(path, entrez.ChrSymbolHeader,
		func(t *tsvFile, f []string) (entrez.ChrSymbol, error) {
			id, err := t.num(f, "entrez_gene_id")
			return entrez.ChrSymbol{
				Chromosome:   f[t.cols["chromosome"]],
				Symbol:       f[t.cols["symbol"]],
				EntrezGeneID: id,
			}, err
		})
}

// ReadXrefs reads a published genes-xrefs.tsv.
func ReadXrefs(path string) ([]entrez.Xref, error) {
	return readTable(path, entrez.XrefsHeader,
		func(t *tsvFile, f []string) (entrez.Xref, error) {
			id, err := t.num(f, "entrez_gene_id")
			return entrez.Xref{
				EntrezGeneID: id,
				Resource:     f[t.cols["resource"]],
				Identifier:   f[t.cols["identifier"]],
			}, err
		})
}

func readTable[T any](
	path string,
	header []string,
	parse func(*tsvFile, []string) (T, error),
) ([]T, error) {
	t, err := openTSV(path, header)
	if err != nil {
		return nil, err
	}
	defer t.Close()

	var res []T
	for {
		fields, err := t.next()
		if err != nil {
			return nil, err
		}
		if fields == nil {
			return res, nil
		}
		v, err := parse(t, fields)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
}
