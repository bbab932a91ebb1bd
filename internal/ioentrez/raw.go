// Package ioentrez reads NCBI Entrez Gene files and reads and writes the
// published TSV tables.
package ioentrez

import (
	"github.com/gnames/genes/pkg/entrez"
)

// gene_info columns used by the processor.
const (
	colTaxID      = "tax_id"
	colGeneID     = "GeneID"
	colSymbol     = "Symbol"
	colSynonyms   = "Synonyms"
	colDBXrefs    = "dbXrefs"
	colChromosome = "chromosome"
	colTypeOfGene = "type_of_gene"
)

// gene_history columns.
const (
	colDiscGeneID = "Discontinued_GeneID"
	colDiscSymbol = "Discontinued_Symbol"
	colDiscDate   = "Discontinue_Date"
)

var (
	geneInfoColumns = []string{
		colTaxID, colGeneID, colSymbol, colSynonyms, colDBXrefs,
		colChromosome, colTypeOfGene,
	}
	geneHistoryColumns = []string{
		colTaxID, colGeneID, colDiscGeneID, colDiscSymbol, colDiscDate,
	}
)

// ReadGeneInfo reads all records of a gene_info file. The file may be
// gzip-compressed. Records of every organism are returned.
func ReadGeneInfo(path string) ([]entrez.Gene, error) {
	t, err := openTSV(path, geneInfoColumns)
	if err != nil {
		return nil, err
	}
	defer t.Close()

	var res []entrez.Gene
	for {
		fields, err := t.next()
		if err != nil {
			return nil, err
		}
		if fields == nil {
			break
		}

		g := entrez.Gene{
			Symbol:     t.str(fields, colSymbol),
			Chromosome: t.optStr(fields, colChromosome),
			TypeOfGene: t.str(fields, colTypeOfGene),
			Synonyms:   t.list(fields, colSynonyms),
			DBXrefs:    t.list(fields, colDBXrefs),
		}
		if g.TaxID, err = t.num(fields, colTaxID); err != nil {
			return nil, err
		}
		if g.EntrezGeneID, err = t.num(fields, colGeneID); err != nil {
			return nil, err
		}
		res = append(res, g)
	}
	return res, nil
}

// ReadGeneHistory reads all records of a gene_history file. GeneID '-'
// (retired without replacement) becomes zero.
func ReadGeneHistory(path string) ([]entrez.HistoryRecord, error) {
	t, err := openTSV(path, geneHistoryColumns)
	if err != nil {
		return nil, err
	}
	defer t.Close()

	var res []entrez.HistoryRecord
	for {
		fields, err := t.next()
		if err != nil {
			return nil, err
		}
		if fields == nil {
			break
		}

		h := entrez.HistoryRecord{
			DiscontinuedSymbol: t.optStr(fields, colDiscSymbol),
			DiscontinueDate:    t.optStr(fields, colDiscDate),
		}
		if h.TaxID, err = t.num(fields, colTaxID); err != nil {
			return nil, err
		}
		if h.GeneID, err = t.optNum(fields, colGeneID); err != nil {
			return nil, err
		}
		if h.DiscontinuedGeneID, err = t.num(fields, colDiscGeneID); err != nil {
			return nil, err
		}
		res = append(res, h)
	}
	return res, nil
}
