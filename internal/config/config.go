// Package config holds the settings of the redeggs command: parser markers
// and limits, logging and output format.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"redeggs/regexlib"
)

// Config holds the complete command configuration
type Config struct {
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// ParserConfig holds pattern parser settings
type ParserConfig struct {
	EmptyWord string `toml:"empty_word" yaml:"empty_word"`
	EmptySet  string `toml:"empty_set" yaml:"empty_set"`
	MaxDepth  int    `toml:"max_depth" yaml:"max_depth"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// OutputConfig holds how syntax trees are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// Output formats.
const (
	FormatTree    = "tree"
	FormatYAML    = "yaml"
	FormatPattern = "pattern"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			EmptyWord: string(regexlib.DefaultEmptyWord),
			EmptySet:  string(regexlib.DefaultEmptySet),
			MaxDepth:  regexlib.DefaultMaxDepth,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: FormatTree,
		},
	}
}

// Load reads a TOML or YAML file, chosen by extension, on top of the
// defaults and validates the result. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the command cannot use.
func (c *Config) Validate() error {
	ew, err := marker("parser.empty_word", c.Parser.EmptyWord)
	if err != nil {
		return err
	}
	es, err := marker("parser.empty_set", c.Parser.EmptySet)
	if err != nil {
		return err
	}
	if ew == es {
		return fmt.Errorf("parser.empty_word and parser.empty_set are both %q", ew)
	}
	if c.Parser.MaxDepth <= 0 {
		return fmt.Errorf("parser.max_depth must be positive, got %d", c.Parser.MaxDepth)
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	switch c.Output.Format {
	case FormatTree, FormatYAML, FormatPattern:
	default:
		return fmt.Errorf("output.format must be tree, yaml or pattern, got %q", c.Output.Format)
	}
	return nil
}

func marker(key, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", key, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || regexlib.IsReserved(r) {
		return 0, fmt.Errorf("%s cannot be %q", key, r)
	}
	return r, nil
}

// ParserOptions translates the parser section into regexlib options. The
// configuration must be valid.
func (c *Config) ParserOptions() []regexlib.Option {
	ew, _ := utf8.DecodeRuneInString(c.Parser.EmptyWord)
	es, _ := utf8.DecodeRuneInString(c.Parser.EmptySet)
	return []regexlib.Option{
		regexlib.WithMarkers(ew, es),
		regexlib.WithMaxDepth(c.Parser.MaxDepth),
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log.level must be debug, info, warn or error, got %q", s)
}

// Logger builds the logger described by the log section, writing to w.
// verbose forces debug level.
func (c *Config) Logger(w io.Writer, verbose bool) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelWarn
	}
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
