package entrez

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
	"strings"
)

type chrKey struct {
	chr    string
	symbol string
}

// groups collects gene IDs per (chromosome, symbol).
type groups map[chrKey]map[int]struct{}

func (g groups) add(chr, symbol string, id int) {
	k := chrKey{chr: chr, symbol: symbol}
	if _, ok := g[k]; !ok {
		g[k] = make(map[int]struct{})
	}
	g[k][id] = struct{}{}
}

func (g groups) sortedKeys() []chrKey {
	return slices.SortedFunc(maps.Keys(g), func(a, b chrKey) int {
		return cmp.Or(cmp.Compare(a.chr, b.chr), cmp.Compare(a.symbol, b.symbol))
	})
}

// ChromosomeSymbolMap maps (chromosome, symbol) pairs to gene IDs.
//
// Genes on several chromosomes are mapped on each of them, unplaced genes
// are not mapped. A pair shared by more than one gene is ambiguous: it is
// left out entirely and reported. With synonyms enabled, synonyms are
// mapped the same way, but never for a pair that is taken by an
// approved symbol, including pairs left out as ambiguous.
func ChromosomeSymbolMap(
	genes []Gene,
	withSynonyms bool,
) ([]ChrSymbol, []Warning) {
	primary := make(groups)
	synonyms := make(groups)
	for _, g := range genes {
		for _, chr := range SplitChromosomes(g.Chromosome) {
			if g.Symbol != "" {
				primary.add(chr, g.Symbol, g.EntrezGeneID)
			}
			if !withSynonyms {
				continue
			}
			for _, syn := range g.Synonyms {
				if syn != "" {
					synonyms.add(chr, syn, g.EntrezGeneID)
				}
			}
		}
	}

	var ws []Warning
	var res []ChrSymbol
	collect := func(g groups, kind WarningKind, skip groups) {
		for _, k := range g.sortedKeys() {
			if _, ok := skip[k]; ok {
				continue
			}
			ids := slices.Sorted(maps.Keys(g[k]))
			if len(ids) > 1 {
				ws = append(ws, newWarning(kind, ids[0],
					"symbol %s on chromosome %s is shared by genes %s",
					k.symbol, k.chr, joinIDs(ids)))
				continue
			}
			res = append(res, ChrSymbol{
				Chromosome:   k.chr,
				Symbol:       k.symbol,
				EntrezGeneID: ids[0],
			})
		}
	}
	collect(primary, AmbiguousSymbol, nil)
	collect(synonyms, AmbiguousSynonym, primary)

	slices.SortFunc(res, func(a, b ChrSymbol) int {
		return cmp.Or(
			cmp.Compare(a.EntrezGeneID, b.EntrezGeneID),
			cmp.Compare(a.Chromosome, b.Chromosome),
			cmp.Compare(a.Symbol, b.Symbol),
		)
	})
	return res, ws
}

func joinIDs(ids []int) string {
	strs := make([]string, len(ids))
	for i, v := range ids {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, ", ")
}
