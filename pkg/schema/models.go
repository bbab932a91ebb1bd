// Package schema provides GORM models of the PostgreSQL tables the
// published gene tables are loaded into.
package schema

// Gene is a row of genes.tsv.
type Gene struct {
	EntrezGeneID int    `gorm:"primaryKey;autoIncrement:false"`
	Symbol       string `gorm:"type:varchar(255);not null;index"`
	Chromosome   string `gorm:"type:varchar(50);not null;default:''"`
	TypeOfGene   string `gorm:"type:varchar(50);not null;default:''"`
}

func (Gene) TableName() string { return "genes" }

// GeneUpdate is a row of updater.tsv.
type GeneUpdate struct {
	OldEntrezGeneID int `gorm:"primaryKey;autoIncrement:false"`
	NewEntrezGeneID int `gorm:"not null;index"`
}

func (GeneUpdate) TableName() string { return "gene_updates" }

// ChromosomeSymbol is a row of chromosome-symbol-map.tsv.
type ChromosomeSymbol struct {
	Chromosome   string `gorm:"type:varchar(50);primaryKey"`
	Symbol       string `gorm:"type:varchar(255);primaryKey"`
	EntrezGeneID int    `gorm:"not null;index"`
}

func (ChromosomeSymbol) TableName() string { return "chromosome_symbols" }

// GeneXref is a row of genes-xrefs.tsv.
type GeneXref struct {
	EntrezGeneID int    `gorm:"primaryKey;autoIncrement:false"`
	Resource     string `gorm:"type:varchar(100);primaryKey"`
	Identifier   string `gorm:"type:varchar(255);primaryKey;index"`
}

func (GeneXref) TableName() string { return "gene_xrefs" }

// RawVersion keeps provenance of the raw files the tables were derived
// from, one row per manifest entry.
type RawVersion struct {
	Source    string `gorm:"type:varchar(100);primaryKey"`
	URL       string `gorm:"type:text;not null"`
	File      string `gorm:"type:varchar(255);not null"`
	Retrieved string `gorm:"type:varchar(50);not null"`
	Modified  string `gorm:"type:varchar(50);not null;default:''"`
	SHA256    string `gorm:"column:sha256;type:char(64);not null;default:''"`
}

func (RawVersion) TableName() string { return "raw_versions" }
