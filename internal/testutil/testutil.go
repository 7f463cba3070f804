// Package testutil provides shared test helpers for config files and a fake lexicon server.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOption configures optional keys of a test config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	cacheFormat     string
	defaultLanguage string
	entryTemplate   string
}

// WithCacheFormat sets cache.format. The default is json.
func WithCacheFormat(format string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.cacheFormat = format
	}
}

// WithDefaultLanguage sets default_language.
func WithDefaultLanguage(language string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.defaultLanguage = language
	}
}

// WithEntryTemplate sets templates.entry_template.
func WithEntryTemplate(templatePath string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.entryTemplate = templatePath
	}
}

// SetupTestConfig creates a config file whose cache lives in tmpDir/cache
// and whose lexicons are fetched from baseURL.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		cacheFormat: "json",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	if cfg.defaultLanguage != "" {
		fmt.Fprintf(&b, "default_language: %s\n", cfg.defaultLanguage)
	}
	fmt.Fprintf(&b, "cache:\n  directory: %s\n  format: %s\n", filepath.Join(tmpDir, "cache"), cfg.cacheFormat)
	fmt.Fprintf(&b, "fetch:\n  base_url: %s\n", baseURL)
	if cfg.entryTemplate != "" {
		fmt.Fprintf(&b, "templates:\n  entry_template: %s\n", cfg.entryTemplate)
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(b.String()), 0644))
	return cfgPath
}

// NewLexiconServer serves document for every .xml path and 404 for anything else.
// The server is closed when the test finishes.
func NewLexiconServer(t *testing.T, document []byte) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path.Ext(r.URL.Path) != ".xml" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write(document)
	}))
	t.Cleanup(server.Close)
	return server
}
