// Package config loads the tslamyu configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/tslamyu"
)

// Config holds all tslamyu configuration.
type Config struct {
	Lexicon LexiconConfig `yaml:"lexicon"`
	Parser  ParserConfig  `yaml:"parser"`
	Output  OutputConfig  `yaml:"output"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// Lexicon sources.
const (
	SourceFile = "file"
	SourceHTTP = "http"
)

// LexiconConfig selects where word readings come from.
type LexiconConfig struct {
	Source  string `yaml:"source"` // file, http
	DataDir string `yaml:"data_dir"`
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// ParserConfig bounds the grammar engine.
type ParserConfig struct {
	MaxTrees      int    `yaml:"max_trees"`
	MaxChartItems int    `yaml:"max_chart_items"`
	Timeout       string `yaml:"timeout"`
}

// OutputConfig controls what reports contain.
type OutputConfig struct {
	Verbose        bool `yaml:"verbose"`
	DeveloperNotes bool `yaml:"developer_notes"`
}

// ServerConfig configures cmd/server.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// Workers bounds the sentences of a batch request analyzed at once.
	Workers int `yaml:"workers"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Source:  SourceFile,
			DataDir: "data",
			URL:     "https://reykunyu.wimiso.nl",
			Timeout: "10s",
		},
		Parser: ParserConfig{
			MaxTrees:      tslamyu.DefaultMaxTrees,
			MaxChartItems: tslamyu.DefaultMaxChartItems,
			Timeout:       tslamyu.DefaultParseTimeout.String(),
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
			Workers:        tslamyu.DefaultWorkers,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("TSLAMYU_DATA_DIR"); dir != "" {
		c.Lexicon.DataDir = dir
	}
	if url := os.Getenv("TSLAMYU_LEXICON_URL"); url != "" {
		c.Lexicon.URL = url
		c.Lexicon.Source = SourceHTTP
	}
	if level := os.Getenv("TSLAMYU_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if addr := os.Getenv("TSLAMYU_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// GetLexiconTimeout returns the lexicon request timeout as a duration.
func (c *Config) GetLexiconTimeout() time.Duration {
	d, err := time.ParseDuration(c.Lexicon.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GetParseTimeout returns the grammar engine timeout as a duration.
func (c *Config) GetParseTimeout() time.Duration {
	d, err := time.ParseDuration(c.Parser.Timeout)
	if err != nil {
		return tslamyu.DefaultParseTimeout
	}
	return d
}

var (
	validSources = []string{SourceFile, SourceHTTP}
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "console"}
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(validSources, c.Lexicon.Source) {
		return fmt.Errorf("invalid lexicon source: %s (valid: %v)", c.Lexicon.Source, validSources)
	}
	if c.Lexicon.Source == SourceFile && c.Lexicon.DataDir == "" {
		return fmt.Errorf("lexicon data_dir is required for the file source")
	}
	if c.Lexicon.Source == SourceHTTP && c.Lexicon.URL == "" {
		return fmt.Errorf("lexicon url is required for the http source")
	}
	if c.Parser.MaxTrees < 0 || c.Parser.MaxChartItems < 0 {
		return fmt.Errorf("parser bounds must not be negative")
	}
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, validLevels)
	}
	if !slices.Contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, validFormats)
	}
	return nil
}

// Options converts the configuration to analyzer options. The logger is
// left for the caller to set.
func (c *Config) Options() tslamyu.Options {
	return tslamyu.Options{
		Verbose:        c.Output.Verbose,
		DeveloperNotes: c.Output.DeveloperNotes,
		MaxTrees:       c.Parser.MaxTrees,
		MaxChartItems:  c.Parser.MaxChartItems,
		ParseTimeout:   c.GetParseTimeout(),
		Workers:        c.Server.Workers,
	}
}
