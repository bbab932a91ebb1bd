package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Gene{},
		&GeneUpdate{},
		&ChromosomeSymbol{},
		&GeneXref{},
		&RawVersion{},
	}
}

// TableNames returns names of all tables in AllModels order.
func TableNames() []string {
	return []string{
		Gene{}.TableName(),
		GeneUpdate{}.TableName(),
		ChromosomeSymbol{}.TableName(),
		GeneXref{}.TableName(),
		RawVersion{}.TableName(),
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
