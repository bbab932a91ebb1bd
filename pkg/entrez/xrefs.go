package entrez

import (
	"cmp"
	"slices"
	"strings"
)

// Xrefs explodes dbXrefs of genes into one row per link. A link is split
// on its first colon ('MIM:138670' -> MIM, 138670; 'HGNC:HGNC:5' -> HGNC,
// HGNC:5). Links without a colon are skipped.
func Xrefs(genes []Gene) []Xref {
	var res []Xref
	for _, g := range genes {
		for _, v := range g.DBXrefs {
			resource, id, ok := strings.Cut(v, ":")
			if !ok || resource == "" || id == "" {
				continue
			}
			res = append(res, Xref{
				EntrezGeneID: g.EntrezGeneID,
				Resource:     resource,
				Identifier:   id,
			})
		}
	}

	slices.SortFunc(res, func(a, b Xref) int {
		return cmp.Or(
			cmp.Compare(a.EntrezGeneID, b.EntrezGeneID),
			cmp.Compare(a.Resource, b.Resource),
			cmp.Compare(a.Identifier, b.Identifier),
		)
	})
	return slices.Compact(res)
}
