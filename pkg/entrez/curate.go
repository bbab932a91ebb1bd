package entrez

import (
	"fmt"

	"github.com/gnames/genes/pkg/manifest"
)

// Options control derivation of the published tables.
type Options struct {
	// TaxID of the organism to keep.
	TaxID int

	// WithSynonyms adds unambiguous synonyms to the chromosome-symbol map.
	WithSynonyms bool

	// WithXrefs creates the cross-references table.
	WithXrefs bool
}

// Input is everything a processing run is derived from.
type Input struct {
	Genes    []Gene
	History  []HistoryRecord
	Manifest manifest.Manifest
	// Sources are names of the raw sources Genes and History were read
	// from. Each should have a manifest entry.
	Sources []string
	Options
}

// Result of a processing run. Manifest is the input manifest, handed back
// so the caller can publish provenance together with the tables.
type Result struct {
	Tables   Tables
	Warnings []Warning
	Manifest manifest.Manifest
}

// Curate derives published tables from raw records. The same input always
// produces the same result.
func Curate(in Input) Result {
	ws := CheckManifest(in.Manifest, in.Sources)

	genes, w := SelectGenes(in.Genes, in.TaxID)
	ws = append(ws, w...)

	updates, w := ResolveUpdates(in.History, LiveIDs(genes), in.TaxID)
	ws = append(ws, w...)

	chrSym, w := ChromosomeSymbolMap(genes, in.WithSynonyms)
	ws = append(ws, w...)

	var xrefs []Xref
	if in.WithXrefs {
		xrefs = Xrefs(genes)
	}

	return Result{
		Tables: Tables{
			Genes:     genes,
			Updates:   updates,
			ChrSymbol: chrSym,
			Xrefs:     xrefs,
		},
		Warnings: ws,
		Manifest: in.Manifest,
	}
}

// CheckManifest reports a MissingManifest warning when the manifest has no
// entries at all, or for every source without an entry.
func CheckManifest(m manifest.Manifest, sources []string) []Warning {
	if len(sources) == 0 {
		return nil
	}
	if m.IsEmpty() {
		return []Warning{newWarning(MissingManifest, 0,
			"version manifest is missing, provenance of raw files is unknown")}
	}

	var res []Warning
	for _, v := range sources {
		if _, ok := m.Get(v); !ok {
			res = append(res, newWarning(MissingManifest, 0,
				"version manifest has no entry for %s", v))
		}
	}
	return res
}

// Check verifies referential integrity of the tables: unique gene IDs,
// update targets and map entries resolving to genes, no live ID in the
// update map, and unique (chromosome, symbol) pairs.
func (t Tables) Check() error {
	live := make(map[int]struct{}, len(t.Genes))
	for _, v := range t.Genes {
		if _, ok := live[v.EntrezGeneID]; ok {
			return fmt.Errorf("gene %d is not unique", v.EntrezGeneID)
		}
		live[v.EntrezGeneID] = struct{}{}
	}

	for _, v := range t.Updates {
		if _, ok := live[v.NewEntrezGeneID]; !ok {
			return fmt.Errorf("update %d -> %d points to unknown gene",
				v.OldEntrezGeneID, v.NewEntrezGeneID)
		}
		if _, ok := live[v.OldEntrezGeneID]; ok {
			return fmt.Errorf("update %d -> %d replaces a live gene",
				v.OldEntrezGeneID, v.NewEntrezGeneID)
		}
	}

	keys := make(map[chrKey]struct{}, len(t.ChrSymbol))
	for _, v := range t.ChrSymbol {
		k := chrKey{chr: v.Chromosome, symbol: v.Symbol}
		if _, ok := keys[k]; ok {
			return fmt.Errorf("symbol %s on chromosome %s is not unique",
				v.Symbol, v.Chromosome)
		}
		keys[k] = struct{}{}
		if _, ok := live[v.EntrezGeneID]; !ok {
			return fmt.Errorf("symbol %s on chromosome %s points to unknown gene %d",
				v.Symbol, v.Chromosome, v.EntrezGeneID)
		}
	}

	for _, v := range t.Xrefs {
		if _, ok := live[v.EntrezGeneID]; !ok {
			return fmt.Errorf("xref %s:%s points to unknown gene %d",
				v.Resource, v.Identifier, v.EntrezGeneID)
		}
	}
	return nil
}
