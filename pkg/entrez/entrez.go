// Package entrez contains the gene data model and the pure curation
// logic that turns raw NCBI Entrez Gene records into published lookup
// tables.
//
// Nothing in this package does I/O. Raw records are parsed by
// internal/ioentrez, and the results of Curate are written there too.
package entrez

import (
	"strconv"
)

// HumanTaxID is the NCBI taxonomy ID of Homo sapiens.
const HumanTaxID = 9606

// Gene is a live Entrez Gene record.
type Gene struct {
	// EntrezGeneID is the primary identifier.
	EntrezGeneID int

	// Symbol is the official gene symbol.
	Symbol string

	// Chromosome is empty for unplaced genes. Genes located on more than
	// one chromosome keep the upstream '|' separated value.
	Chromosome string

	// TypeOfGene is the upstream category (protein-coding, ncRNA, ...).
	TypeOfGene string

	// TaxID is the organism of the record.
	TaxID int

	// Synonyms are alternative symbols.
	Synonyms []string

	// DBXrefs are 'resource:identifier' links to other databases.
	DBXrefs []string
}

// HistoryRecord is a row of gene_history.
type HistoryRecord struct {
	TaxID int

	// GeneID is the current ID the discontinued one was merged into.
	// Zero means the ID was retired without replacement.
	GeneID int

	DiscontinuedGeneID int
	DiscontinuedSymbol string
	DiscontinueDate    string
}

// Update maps a discontinued ID to the live ID that replaced it.
type Update struct {
	OldEntrezGeneID int
	NewEntrezGeneID int
}

// ChrSymbol resolves a symbol that is unique within a chromosome.
type ChrSymbol struct {
	Chromosome   string
	Symbol       string
	EntrezGeneID int
}

// Xref is a link from a gene to an identifier in another resource.
type Xref struct {
	EntrezGeneID int
	Resource     string
	Identifier   string
}

// Tables are the published results of a processing run.
type Tables struct {
	Genes     []Gene
	Updates   []Update
	ChrSymbol []ChrSymbol
	Xrefs     []Xref
}

// Published column names. They are part of the contract with downstream
// consumers.
var (
	GenesHeader     = []string{"entrez_gene_id", "symbol", "chromosome", "type_of_gene"}
	UpdaterHeader   = []string{"old_entrez_gene_id", "new_entrez_gene_id"}
	ChrSymbolHeader = []string{"chromosome", "symbol", "entrez_gene_id"}
	XrefsHeader     = []string{"entrez_gene_id", "resource", "identifier"}
)

// Row returns the genes.tsv fields.
func (g Gene) Row() []string {
	return []string{
		strconv.Itoa(g.EntrezGeneID), g.Symbol, g.Chromosome, g.TypeOfGene,
	}
}

// Row returns the updater.tsv fields.
func (u Update) Row() []string {
	return []string{
		strconv.Itoa(u.OldEntrezGeneID), strconv.Itoa(u.NewEntrezGeneID),
	}
}

// Row returns the chromosome-symbol-map.tsv fields.
func (c ChrSymbol) Row() []string {
	return []string{c.Chromosome, c.Symbol, strconv.Itoa(c.EntrezGeneID)}
}

// Row returns the genes-xrefs.tsv fields.
func (x Xref) Row() []string {
	return []string{strconv.Itoa(x.EntrezGeneID), x.Resource, x.Identifier}
}
