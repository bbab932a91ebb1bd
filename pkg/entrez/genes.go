package entrez

import (
	"cmp"
	"slices"
	"strings"
)

// SelectGenes keeps records of the given organism, sorted by ID.
// Repeated IDs keep the first record and produce a DuplicateGene warning.
func SelectGenes(records []Gene, taxID int) ([]Gene, []Warning) {
	var ws []Warning
	seen := make(map[int]struct{}, len(records))
	res := make([]Gene, 0, len(records))
	for _, v := range records {
		if v.TaxID != taxID {
			continue
		}
		if _, ok := seen[v.EntrezGeneID]; ok {
			ws = append(ws, newWarning(DuplicateGene, v.EntrezGeneID,
				"gene %d (%s) occurs more than once, keeping the first record",
				v.EntrezGeneID, v.Symbol))
			continue
		}
		seen[v.EntrezGeneID] = struct{}{}
		res = append(res, v)
	}

	slices.SortStableFunc(res, func(a, b Gene) int {
		return cmp.Compare(a.EntrezGeneID, b.EntrezGeneID)
	})
	return res, ws
}

// LiveIDs returns a set of gene IDs.
func LiveIDs(genes []Gene) map[int]struct{} {
	res := make(map[int]struct{}, len(genes))
	for _, v := range genes {
		res[v.EntrezGeneID] = struct{}{}
	}
	return res
}

// SplitChromosomes splits a multi-chromosome value ('X|Y') into
// chromosomes. Empty parts are skipped, duplicates removed.
func SplitChromosomes(chr string) []string {
	var res []string
	for _, v := range strings.Split(chr, "|") {
		v = strings.TrimSpace(v)
		if v == "" || v == "-" || slices.Contains(res, v) {
			continue
		}
		res = append(res, v)
	}
	return res
}
