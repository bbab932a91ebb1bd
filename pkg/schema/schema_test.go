package schema_test

import (
	"sync"
	"testing"

	"github.com/gnames/genes/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gschema "gorm.io/gorm/schema"
)

func parse(t *testing.T, model any) *gschema.Schema {
	t.Helper()
	res, err := gschema.Parse(model, &sync.Map{}, gschema.NamingStrategy{})
	require.NoError(t, err)
	return res
}

func columns(s *gschema.Schema) []string {
	var res []string
	for _, v := range s.Fields {
		res = append(res, v.DBName)
	}
	return res
}

func primaryKeys(s *gschema.Schema) []string {
	var res []string
	for _, v := range s.PrimaryFields {
		res = append(res, v.DBName)
	}
	return res
}

func TestModels(t *testing.T) {
	tests := []struct {
		model   any
		table   string
		columns []string
		keys    []string
	}{
		{
			model:   &schema.Gene{},
			table:   "genes",
			columns: []string{"entrez_gene_id", "symbol", "chromosome", "type_of_gene"},
			keys:    []string{"entrez_gene_id"},
		},
		{
			model:   &schema.GeneUpdate{},
			table:   "gene_updates",
			columns: []string{"old_entrez_gene_id", "new_entrez_gene_id"},
			keys:    []string{"old_entrez_gene_id"},
		},
		{
			model:   &schema.ChromosomeSymbol{},
			table:   "chromosome_symbols",
			columns: []string{"chromosome", "symbol", "entrez_gene_id"},
			keys:    []string{"chromosome", "symbol"},
		},
		{
			model:   &schema.GeneXref{},
			table:   "gene_xrefs",
			columns: []string{"entrez_gene_id", "resource", "identifier"},
			keys:    []string{"entrez_gene_id", "resource", "identifier"},
		},
		{
			model:   &schema.RawVersion{},
			table:   "raw_versions",
			columns: []string{"source", "url", "file", "retrieved", "modified", "sha256"},
			keys:    []string{"source"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			s := parse(t, tt.model)
			assert.Equal(t, tt.table, s.Table)
			assert.Equal(t, tt.columns, columns(s))
			assert.Equal(t, tt.keys, primaryKeys(s))
		})
	}
}

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	names := schema.TableNames()
	require.Len(t, names, len(models))
	for i, v := range models {
		assert.Equal(t, names[i], parse(t, v).Table)
	}
}
