// Package config loads qqt settings from defaults, a YAML file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sartorproj/qqt/csvload"
)

// Config holds every setting the CLI understands.
type Config struct {
	SkipLines  int           `koanf:"skip_lines"`
	Quote      string        `koanf:"quote"`
	Delimiter  string        `koanf:"delimiter"`
	Terminator string        `koanf:"terminator"` // "crlf" or a single character
	Headers    bool          `koanf:"headers"`
	Trim       bool          `koanf:"trim"`
	Format     string        `koanf:"format"` // table, json, yaml
	Rows       int           `koanf:"rows"`
	Timeout    time.Duration `koanf:"timeout"`
	LogLevel   string        `koanf:"log_level"`
}

// Defaults returns the default settings as a flat koanf map.
func Defaults() map[string]any {
	return map[string]any{
		"skip_lines": 0,
		"quote":      `"`,
		"delimiter":  ",",
		"terminator": "crlf",
		"headers":    true,
		"trim":       false,
		"format":     "table",
		"rows":       10,
		"timeout":    "30s",
		"log_level":  "warn",
	}
}

// CSVOptions converts the parsing settings into csvload options.
func (c *Config) CSVOptions() (*csvload.Options, error) {
	quote, err := singleByte("quote", c.Quote)
	if err != nil {
		return nil, err
	}
	delim, err := singleByte("delimiter", c.Delimiter)
	if err != nil {
		return nil, err
	}

	opts := csvload.DefaultOptions().
		WithSkipLines(c.SkipLines).
		WithQuote(quote).
		WithDelimiter(delim).
		WithHeaders(c.Headers)

	if !strings.EqualFold(c.Terminator, "crlf") && c.Terminator != "" {
		term, err := singleByte("terminator", c.Terminator)
		if err != nil {
			return nil, err
		}
		opts = opts.WithTerminator(term)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks the settings that are not covered by CSVOptions.
func (c *Config) Validate() error {
	switch c.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("config: unknown format %q (want table, json or yaml)", c.Format)
	}
	if c.Rows < 0 {
		return fmt.Errorf("config: rows must not be negative, got %d", c.Rows)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	_, err := c.CSVOptions()
	return err
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}

// singleByte accepts one ASCII character or one of the escapes \t, \n, \r.
func singleByte(key, s string) (byte, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	case `\n`:
		return '\n', nil
	case `\r`:
		return '\r', nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("config: %s must be a single character, got %q", key, s)
	}
	return s[0], nil
}
