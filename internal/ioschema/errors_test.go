package ioschema

import (
	"errors"
	"testing"

	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		vars []any
	}{
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError, nil},
		{"gorm", GORMConnectionError(cause), errcode.SchemaGORMConnectionError, nil},
		{"migrate", MigrateSchemaError(cause), errcode.SchemaMigrateError, nil},
		{
			"collation",
			CollationError("genes", "symbol", cause),
			errcode.SchemaCollationError,
			[]any{"genes", "symbol"},
		},
		{
			"analyze",
			AnalyzeError("gene_xrefs", cause),
			errcode.SchemaAnalyzeError,
			[]any{"gene_xrefs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.Equal(t, tt.vars, gnErr.Vars)
			require.NotNil(t, gnErr.Err)
		})
	}
}

func TestErrorsWrapCause(t *testing.T) {
	cause := errors.New("boom")

	for _, err := range []error{
		GORMConnectionError(cause),
		MigrateSchemaError(cause),
		CollationError("genes", "symbol", cause),
		AnalyzeError("genes", cause),
	} {
		gnErr := err.(*gn.Error)
		assert.ErrorIs(t, gnErr.Err, cause)
	}
}
