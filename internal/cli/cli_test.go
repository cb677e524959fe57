package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/config"
)

const library = `{"files":[
  {"title":"Apex Basics","url":"apex.html","description":"Trigger automation in code"},
  {"title":"Flows","url":"/rag/flows.html","description":"Declarative automation"}
]}`

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/Salesforce-RAG/rag/rag-library.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(library))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// emptyConfig writes a config file holding only defaults so the working
// directory never leaks into a test
func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestQueryHTML(t *testing.T) {
	srv := newSite(t)

	out, _, err := run(t, "query", "apex", "--html", "--base-url", srv.URL, "--config", emptyConfig(t))

	require.NoError(t, err)
	assert.Contains(t, out, `<div class="search-result-item">`)
	assert.Contains(t, out, `<a href="/Salesforce-RAG/rag/apex.html"><mark>Apex</mark> Basics</a>`)
	assert.Contains(t, out, `aria-hidden="false"`)
	assert.NotContains(t, out, "Flows")
}

func TestQueryJSON(t *testing.T) {
	srv := newSite(t)

	out, _, err := run(t, "query", "FLOWS", "--json", "--base-url", srv.URL, "--config", emptyConfig(t))
	require.NoError(t, err)

	var res queryResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "open-results", res.Phase)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "<mark>Flows</mark>", res.Results[0].Title)
	assert.Equal(t, "/Salesforce-RAG/rag/flows.html", res.Results[0].URL)
}

func TestQueryNoResults(t *testing.T) {
	srv := newSite(t)

	out, _, err := run(t, "query", "zzz", "--json", "--base-url", srv.URL, "--config", emptyConfig(t))
	require.NoError(t, err)

	var res queryResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, `No results found for "zzz"`, res.Message)
	assert.Empty(t, res.Results)
}

func TestQueryUnreachableSite(t *testing.T) {
	srv := newSite(t)
	url := srv.URL
	srv.Close()

	out, _, err := run(t, "query", "apex", "--base-url", url, "--config", emptyConfig(t))

	require.NoError(t, err)
	assert.Contains(t, out, "Search data not loaded. Please refresh the page.")
}

func TestQueryTooShort(t *testing.T) {
	srv := newSite(t)

	out, errOut, err := run(t, "query", "a", "--base-url", srv.URL, "--config", emptyConfig(t))

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "at least 2 characters")
}

func TestQueryScanSource(t *testing.T) {
	dir := t.TempDir()
	page := `<html><body>
<a href="/Salesforce-RAG/rag/apex.html">Apex Basics</a><p>Triggers and classes</p>
<a href="/Salesforce-RAG/index.html">Home</a>
</body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0o644))

	out, _, err := run(t, "query", "trigger", "--json", "--source", "scan", "--site-dir", dir, "--config", emptyConfig(t))
	require.NoError(t, err)

	var res queryResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Results, 1)
	assert.Equal(t, "Apex Basics", res.Results[0].Title)
	assert.Equal(t, "/Salesforce-RAG/rag/apex.html", res.Results[0].URL)
}

func TestConfigFileValues(t *testing.T) {
	srv := newSite(t)
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("[search]\nmax_results = 1\n"), 0o644))

	out, _, err := run(t, "query", "automation", "--json", "--base-url", srv.URL, "--config", path)
	require.NoError(t, err)

	var res queryResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Results, 1)
	assert.Equal(t, "/Salesforce-RAG/rag/apex.html", res.Results[0].URL)
}

func TestInvalidSourceFlag(t *testing.T) {
	_, _, err := run(t, "query", "apex", "--source", "ftp", "--config", emptyConfig(t))

	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestHTMLAndJSONConflict(t *testing.T) {
	_, _, err := run(t, "query", "apex", "--html", "--json", "--config", emptyConfig(t))

	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc123")
	t.Cleanup(func() { SetVersion("dev", "unknown") })

	out, _, err := run(t, "version", "--short")

	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestConfigInitWritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", config.FileName)

	out, _, err := run(t, "config", "init", path, "--base-url", "https://example.github.io", "--config", emptyConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.NewConfigService(".").LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.github.io", cfg.Site.BaseURL)
	assert.Equal(t, config.DefaultConfig().Search, cfg.Search)

	// refuses to overwrite without --force
	_, _, err = run(t, "config", "init", path, "--config", emptyConfig(t))
	assert.Error(t, err)

	_, _, err = run(t, "config", "init", path, "--force", "--config", emptyConfig(t))
	assert.NoError(t, err)
}

func TestConfigPrintsEffectiveValues(t *testing.T) {
	out, _, err := run(t, "config", "--source", "scan", "--config", emptyConfig(t))

	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, toml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, config.SourceScan, cfg.Source.Kind)
}
