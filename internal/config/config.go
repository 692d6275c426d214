// ABOUTME: Configuration loading for treelens from TOML or YAML files
// ABOUTME: Applies TREELENS_* environment overrides and validates settings

// Package config loads treelens settings from an optional TOML or YAML file
// and TREELENS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/prateek/treelens/bracket"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Formats accepted for input; "auto" sniffs the treebank registry
var Formats = []string{"auto", "bracket", "json"}

// Outputs accepted for parse results
var Outputs = []string{"text", "json", "yaml"}

// Config holds every treelens setting. Zero values are not meaningful;
// start from Default or Load.
type Config struct {
	// Delimiters, one character each
	Open  string `toml:"open" yaml:"open"`
	Close string `toml:"close" yaml:"close"`

	// Input handling
	Format         string `toml:"format" yaml:"format"`
	Normalize      bool   `toml:"normalize" yaml:"normalize"`
	IgnoreTrailing bool   `toml:"ignore_trailing" yaml:"ignore_trailing"`
	MaxErrors      int    `toml:"max_errors" yaml:"max_errors"` // 0 means no limit

	// Output and logging
	Output   string `toml:"output" yaml:"output"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Open:      "(",
		Close:     ")",
		Format:    "auto",
		Normalize: true,
		Output:    "text",
		LogLevel:  "info",
	}
}

// Load starts from Default, overlays the file at path (if any) and then the
// environment. It does not validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := decode(content, filepath.Ext(path), &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func decode(content []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(content, cfg)
	case ".toml", "":
		return toml.Unmarshal(content, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

func (c *Config) applyEnv() {
	c.Open = envOr("TREELENS_OPEN", c.Open)
	c.Close = envOr("TREELENS_CLOSE", c.Close)
	c.Format = envOr("TREELENS_FORMAT", c.Format)
	c.Normalize = envBool("TREELENS_NORMALIZE", c.Normalize)
	c.IgnoreTrailing = envBool("TREELENS_IGNORE_TRAILING", c.IgnoreTrailing)
	c.MaxErrors = envInt("TREELENS_MAX_ERRORS", c.MaxErrors)
	c.Output = envOr("TREELENS_OUTPUT", c.Output)
	c.LogLevel = envOr("TREELENS_LOG_LEVEL", c.LogLevel)
}

// Validate reports every problem found, joined
func (c Config) Validate() error {
	var errs []error

	for _, d := range []struct{ name, value string }{{"open", c.Open}, {"close", c.Close}} {
		if utf8.RuneCountInString(d.value) != 1 {
			errs = append(errs, fmt.Errorf("%w: %s delimiter %q must be a single character", ErrInvalidConfig, d.name, d.value))
			continue
		}
		if r, _ := utf8.DecodeRuneInString(d.value); unicode.IsSpace(r) {
			errs = append(errs, fmt.Errorf("%w: %s delimiter must not be whitespace", ErrInvalidConfig, d.name))
		}
	}
	if c.Open == c.Close {
		errs = append(errs, fmt.Errorf("%w: open and close delimiters are both %q", ErrInvalidConfig, c.Open))
	}
	if c.MaxErrors < 0 {
		errs = append(errs, fmt.Errorf("%w: max errors %d is negative", ErrInvalidConfig, c.MaxErrors))
	}
	if !slices.Contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("%w: format %q, want one of %v", ErrInvalidConfig, c.Format, Formats))
	}
	if !slices.Contains(Outputs, c.Output) {
		errs = append(errs, fmt.Errorf("%w: output %q, want one of %v", ErrInvalidConfig, c.Output, Outputs))
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel))
	}

	return errors.Join(errs...)
}

// BracketOptions converts the delimiter and policy settings.
// Call Validate first.
func (c Config) BracketOptions() bracket.Options {
	open, _ := utf8.DecodeRuneInString(c.Open)
	close, _ := utf8.DecodeRuneInString(c.Close)
	return bracket.Options{
		Open:           open,
		Close:          close,
		Normalize:      c.Normalize,
		IgnoreTrailing: c.IgnoreTrailing,
	}
}

// SlogLevel returns the configured log level, or info if it does not parse
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
