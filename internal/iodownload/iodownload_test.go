package iodownload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/genes/internal/iomanifest"
	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/genes/pkg/manifest"
	"github.com/gnames/genes/pkg/sources"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sourcesStub struct {
	cfg *sources.SourcesConfig
}

func (s sourcesStub) Load() (*sources.SourcesConfig, error) {
	return s.cfg, nil
}

var retrieved = time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)

func newServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := files[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Last-Modified", "Tue, 30 Sep 2025 03:12:00 GMT")
		w.Write([]byte(content))
	}))
	t.Cleanup(server.Close)
	return server
}

func newDownloader(
	t *testing.T,
	url string,
	names ...string,
) (*downloader, string) {
	t.Helper()
	rawDir := filepath.Join(t.TempDir(), "download")
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptRawDir(rawDir),
		config.OptDownloadSources(names),
	})
	src := sourcesStub{cfg: &sources.SourcesConfig{
		RawSources: []sources.RawSourceConfig{
			{Name: sources.GeneHistory, URL: url + "/gene_history.gz", File: "gene_history.gz"},
			{Name: sources.GeneInfo, URL: url + "/gene_info.gz", File: "gene_info.gz"},
		},
	}}
	d := New(cfg, src).(*downloader)
	d.quiet = true
	d.now = func() time.Time { return retrieved }
	return d, rawDir
}

func sum(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

func TestDownload(t *testing.T) {
	server := newServer(t, map[string]string{
		"/gene_history.gz": "history",
		"/gene_info.gz":    "info",
	})
	d, rawDir := newDownloader(t, server.URL)

	m, err := d.Download(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gene_history", "gene_info"}, m.Names())

	v, ok := m.Get(sources.GeneInfo)
	require.True(t, ok)
	assert.Equal(t, manifest.Version{
		URL:       server.URL + "/gene_info.gz",
		File:      "gene_info.gz",
		Retrieved: "2026-10-01T10:00:00Z",
		Modified:  "2025-09-30T03:12:00Z",
		SHA256:    sum("info"),
	}, v)

	data, err := os.ReadFile(filepath.Join(rawDir, "gene_history.gz"))
	require.NoError(t, err)
	assert.Equal(t, "history", string(data))

	persisted, ok, err := iomanifest.Read(rawDir)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, m, persisted)
}

func TestDownloadSelected(t *testing.T) {
	server := newServer(t, map[string]string{
		"/gene_history.gz": "history",
		"/gene_info.gz":    "info",
	})
	d, rawDir := newDownloader(t, server.URL, sources.GeneInfo)

	m, err := d.Download(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gene_info"}, m.Names())

	_, err = os.Stat(filepath.Join(rawDir, "gene_history.gz"))
	assert.True(t, os.IsNotExist(err))
}

func TestDownloadUnknownSource(t *testing.T) {
	d, _ := newDownloader(t, "http://localhost", "gene2go")

	_, err := d.Download(context.Background())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SourcesNotFoundError, gnErr.Code)
}

// TestDownloadFailureKeepsPrevious checks that a failed fetch leaves the
// previous file and manifest entry of that source untouched, while
// sources fetched before it in the same run are updated.
func TestDownloadFailureKeepsPrevious(t *testing.T) {
	files := map[string]string{
		"/gene_history.gz": "history v1",
		"/gene_info.gz":    "info v1",
	}
	server := newServer(t, files)
	d, rawDir := newDownloader(t, server.URL)

	first, err := d.Download(context.Background())
	require.NoError(t, err)

	files["/gene_history.gz"] = "history v2"
	delete(files, "/gene_info.gz")
	d.now = func() time.Time { return retrieved.Add(24 * time.Hour) }

	m, err := d.Download(context.Background())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DownloadStatusError, gnErr.Code)

	persisted, _, err := iomanifest.Read(rawDir)
	require.NoError(t, err)
	assert.Equal(t, m, persisted)

	hist, _ := persisted.Get(sources.GeneHistory)
	assert.Equal(t, "2026-10-02T10:00:00Z", hist.Retrieved)
	assert.Equal(t, sum("history v2"), hist.SHA256)

	info, _ := persisted.Get(sources.GeneInfo)
	oldInfo, _ := first.Get(sources.GeneInfo)
	assert.Equal(t, oldInfo, info)

	data, err := os.ReadFile(filepath.Join(rawDir, "gene_info.gz"))
	require.NoError(t, err)
	assert.Equal(t, "info v1", string(data))

	entries, err := os.ReadDir(rawDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temporary files are left behind")
}

func TestDownloadCancelled(t *testing.T) {
	server := newServer(t, map[string]string{})
	d, rawDir := newDownloader(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Download(ctx)
	require.Error(t, err)

	_, ok, err := iomanifest.Read(rawDir)
	require.NoError(t, err)
	assert.False(t, ok)
}
