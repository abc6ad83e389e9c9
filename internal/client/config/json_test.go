package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"auth_url":      "http://json/auth",
		"graphql_url":   "http://json/graphql",
		"database_path": "json.db",
		"http_timeout":  "10s",
		"log_level":     "info",
		"log_format":    "json",
		"chart_dir":     "out",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, &Config{
			AuthURL:      "http://json/auth",
			GraphQLURL:   "http://json/graphql",
			DatabasePath: "json.db",
			HTTPTimeout:  10 * time.Second,
			LogLevel:     "info",
			LogFormat:    "json",
			ChartDir:     "out",
		}, cfg)
	})

	t.Run("short flag and numeric timeout", func(t *testing.T) {
		p := writeTempJSON(t, dir, "short.json", map[string]any{"http_timeout": int64(3 * time.Second)})
		os.Args = []string{"testbin", "-c=" + p}

		cfg := &Config{AuthURL: "keep"}
		parseJson(cfg)

		assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "keep", cfg.AuthURL, "absent fields are not overwritten")
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			AuthURL:     "defaults",
			HTTPTimeout: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults", cfg.AuthURL)
		assert.Equal(t, 42*time.Second, cfg.HTTPTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
