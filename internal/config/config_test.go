package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// defaults returns a Config as loaded with no file and no env overrides.
func defaults(t *testing.T) *Config {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "45s"
  shutdown_timeout: "5s"

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "https://gospelpath.app"

bolls:
  base_url: "http://bolls.local"
  timeout: "3s"

llm:
  groq_api_key: "gsk_test"
  claude_model: "claude-test"

data:
  crossref_popular_path: "/srv/data/popular.json"
  crossref_full_path: "/srv/data/full.json"

enrich:
  workers: 4
  lookup_timeout: "2s"
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout, "default fills unset field")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://gospelpath.app", cfg.CORS.AllowedOrigins)
	assert.Equal(t, "http://bolls.local", cfg.Bolls.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Bolls.Timeout)
	assert.True(t, cfg.LLM.HasGroq())
	assert.False(t, cfg.LLM.HasClaude())
	assert.Equal(t, "claude-test", cfg.LLM.ClaudeModel)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.GroqModel)
	assert.Equal(t, "/srv/data/full.json", cfg.Data.CrossRefFullPath)
	assert.Equal(t, 4, cfg.Enrich.Workers)
	assert.Equal(t, 2*time.Second, cfg.Enrich.LookupTimeout)
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("ENRICH_WORKERS", "12")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 12, cfg.Enrich.Workers)
	assert.True(t, cfg.LLM.HasClaude())
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	cfg := defaults(t)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://bolls.life", cfg.Bolls.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Bolls.Timeout)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.LLM.GroqBaseURL)
	assert.False(t, cfg.LLM.HasGroq())
	assert.Equal(t, "data/cross-references-popular.json", cfg.Data.CrossRefPopularPath)
	assert.Equal(t, "data/cross-references.json", cfg.Data.CrossRefFullPath)
	assert.Equal(t, 8, cfg.Enrich.Workers)
	assert.Equal(t, 5*time.Second, cfg.Enrich.LookupTimeout)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "server: [unclosed")
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ValidationRuns(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "enrich:\n  workers: 100\n")
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enrich.workers")
}

func TestValidate(t *testing.T) {
	base := defaults(t)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "body limit", mutate: func(c *Config) { c.Server.MaxBodyBytes = 0 }, wantErr: "server.max_body_bytes"},
		{name: "log level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: "log.level"},
		{name: "log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "bolls url", mutate: func(c *Config) { c.Bolls.BaseURL = "bolls.life" }, wantErr: "bolls.base_url"},
		{name: "bolls timeout", mutate: func(c *Config) { c.Bolls.Timeout = 0 }, wantErr: "bolls.timeout"},
		{name: "claude url optional", mutate: func(c *Config) { c.LLM.ClaudeBaseURL = "" }},
		{name: "claude url malformed", mutate: func(c *Config) { c.LLM.ClaudeBaseURL = "ftp://x" }, wantErr: "llm.claude_base_url"},
		{name: "llm timeout", mutate: func(c *Config) { c.LLM.Timeout = -time.Second }, wantErr: "llm.timeout"},
		{name: "popular path", mutate: func(c *Config) { c.Data.CrossRefPopularPath = "" }, wantErr: "data.crossref_popular_path"},
		{name: "workers too many", mutate: func(c *Config) { c.Enrich.Workers = 65 }, wantErr: "enrich.workers"},
		{name: "lookup timeout", mutate: func(c *Config) { c.Enrich.LookupTimeout = 0 }, wantErr: "enrich.lookup_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *base
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := *defaults(t)
	cfg.Server.Port = -1
	cfg.Enrich.Workers = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "enrich.workers")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
