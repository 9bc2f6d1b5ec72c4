package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/tslamyu"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TSLAMYU_DATA_DIR", "TSLAMYU_LEXICON_URL", "TSLAMYU_LOG_LEVEL", "TSLAMYU_ADDR"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, SourceFile, cfg.Lexicon.Source)
	assert.Equal(t, tslamyu.DefaultParseTimeout, cfg.GetParseTimeout())
	assert.Equal(t, 10*time.Second, cfg.GetLexiconTimeout())
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tslamyu.yaml")
	yaml := `
lexicon:
  source: http
  url: http://localhost:9000
parser:
  max_trees: 12
  timeout: 150ms
output:
  verbose: true
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, SourceHTTP, cfg.Lexicon.Source)
	assert.Equal(t, "http://localhost:9000", cfg.Lexicon.URL)
	assert.Equal(t, "data", cfg.Lexicon.DataDir, "unset keys keep their default")

	opts := cfg.Options()
	assert.True(t, opts.Verbose)
	assert.Equal(t, 12, opts.MaxTrees)
	assert.Equal(t, tslamyu.DefaultMaxChartItems, opts.MaxChartItems)
	assert.Equal(t, 150*time.Millisecond, opts.ParseTimeout)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parser: [unclosed"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "tslamyu.yaml")
	cfg := DefaultConfig()
	cfg.Server.Addr = ":9999"
	cfg.Output.DeveloperNotes = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TSLAMYU_DATA_DIR", "/srv/navi")
	t.Setenv("TSLAMYU_LEXICON_URL", "http://fwew.local")
	t.Setenv("TSLAMYU_LOG_LEVEL", "warn")
	t.Setenv("TSLAMYU_ADDR", ":7000")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/navi", cfg.Lexicon.DataDir)
	assert.Equal(t, "http://fwew.local", cfg.Lexicon.URL)
	assert.Equal(t, SourceHTTP, cfg.Lexicon.Source)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestDurationFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parser.Timeout = "soon"
	cfg.Lexicon.Timeout = ""
	assert.Equal(t, tslamyu.DefaultParseTimeout, cfg.GetParseTimeout())
	assert.Equal(t, 10*time.Second, cfg.GetLexiconTimeout())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"source", func(c *Config) { c.Lexicon.Source = "sqlite" }, "invalid lexicon source"},
		{"data dir", func(c *Config) { c.Lexicon.DataDir = "" }, "data_dir"},
		{"url", func(c *Config) { c.Lexicon.Source = SourceHTTP; c.Lexicon.URL = "" }, "url"},
		{"bounds", func(c *Config) { c.Parser.MaxTrees = -1 }, "negative"},
		{"level", func(c *Config) { c.Logging.Level = "trace" }, "invalid log level"},
		{"format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
