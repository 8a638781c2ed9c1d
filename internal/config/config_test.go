package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Enrich.TimeoutSeconds)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = "3001"

[enrich]
base_url = "http://enrich:9000"
no_llm = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "http://enrich:9000", cfg.Enrich.BaseURL)
	assert.True(t, cfg.Enrich.NoLLM)
	// Untouched sections keep defaults.
	assert.Equal(t, "gather.db", cfg.Store.Path)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[server`), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("ENRICH_URL", "http://other:8090")
	t.Setenv("NO_LLM", "true")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "http://other:8090", cfg.Enrich.BaseURL)
	assert.True(t, cfg.Enrich.NoLLM)
	// GEMINI_API_KEY backfills only when LLM_API_KEY is unset.
	assert.Equal(t, "g-key", cfg.LLM.APIKey)
}
