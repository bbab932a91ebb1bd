package sources_test

import (
	"testing"

	"github.com/gnames/genes/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ncbiSources() *sources.SourcesConfig {
	return &sources.SourcesConfig{
		RawSources: []sources.RawSourceConfig{
			{
				Name: sources.GeneHistory,
				URL:  "https://ftp.ncbi.nih.gov/gene/DATA/gene_history.gz",
				File: "gene_history.gz",
			},
			{
				Name: sources.GeneInfo,
				URL: "https://ftp.ncbi.nih.gov/gene/DATA/GENE_INFO/" +
					"Mammalia/Homo_sapiens.gene_info.gz",
				File: "Homo_sapiens.gene_info.gz",
			},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts default sources", func(t *testing.T) {
		cfg := ncbiSources()
		require.NoError(t, cfg.Validate())
		assert.Empty(t, cfg.Warnings)
	})

	t.Run("rejects empty config", func(t *testing.T) {
		cfg := &sources.SourcesConfig{}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no raw sources")
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		cfg := ncbiSources()
		cfg.RawSources[1].Name = sources.GeneHistory
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate name")
	})

	t.Run("rejects duplicate files", func(t *testing.T) {
		cfg := ncbiSources()
		cfg.RawSources[1].File = "gene_history.gz"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate file")
	})

	t.Run("warns about missing processing source", func(t *testing.T) {
		cfg := ncbiSources()
		cfg.RawSources = cfg.RawSources[:1]
		require.NoError(t, cfg.Validate())
		require.Len(t, cfg.Warnings, 1)
		assert.Equal(t, sources.GeneInfo, cfg.Warnings[0].Source)
	})
}

func TestRawSourceValidate(t *testing.T) {
	tests := []struct {
		msg  string
		src  sources.RawSourceConfig
		file string
		warn int
		err  string
	}{
		{
			msg:  "file from url",
			src:  sources.RawSourceConfig{Name: "a", URL: "https://x.org/d/a.gz"},
			file: "a.gz",
			warn: 1,
		},
		{
			msg: "no name",
			src: sources.RawSourceConfig{URL: "https://x.org/a.gz"},
			err: "name is required",
		},
		{
			msg: "ftp url",
			src: sources.RawSourceConfig{Name: "a", URL: "ftp://x.org/a.gz"},
			err: "http(s)",
		},
		{
			msg: "nested file",
			src: sources.RawSourceConfig{
				Name: "a", URL: "https://x.org/a.gz", File: "../a.gz",
			},
			err: "plain file name",
		},
		{
			msg: "reserved file",
			src: sources.RawSourceConfig{
				Name: "a", URL: "https://x.org/a.gz", File: "versions.json",
			},
			err: "reserved",
		},
	}

	for _, v := range tests {
		warns, err := v.src.Validate()
		if v.err != "" {
			require.Error(t, err, v.msg)
			assert.Contains(t, err.Error(), v.err, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.file, v.src.File, v.msg)
		assert.Len(t, warns, v.warn, v.msg)
	}
}

func TestFilter(t *testing.T) {
	cfg := ncbiSources()

	res, missing := cfg.Filter(nil)
	assert.Len(t, res, 2)
	assert.Empty(t, missing)

	res, missing = cfg.Filter([]string{sources.GeneInfo, "unknown"})
	require.Len(t, res, 1)
	assert.Equal(t, sources.GeneInfo, res[0].Name)
	assert.Equal(t, []string{"unknown"}, missing)

	src, ok := cfg.ByName(sources.GeneHistory)
	assert.True(t, ok)
	assert.Equal(t, "gene_history.gz", src.File)

	_, ok = cfg.ByName("nope")
	assert.False(t, ok)
}
