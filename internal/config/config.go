package config

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mxmauro/teaecb/crypto/tea"
	"github.com/pion/logging"
)

// -----------------------------------------------------------------------------

const (
	// DefaultMessage is the sample plaintext used when none is configured.
	DefaultMessage = "Mensaje de prueba para TEA"

	// DefaultKey is the sample key, as 32 hex digits (four big-endian words).
	DefaultKey = "A56BABCD000FF123DEADBEEF01234567"
)

// Config holds the demo settings.
type Config struct {
	Message    string `json:"message"`
	Key        string `json:"key"`
	Workers    int    `json:"workers"`
	LogLevel   string `json:"log_level"`
	ShowBlocks *bool  `json:"show_blocks"`
}

// Flags holds CLI values that override the config file when set.
type Flags struct {
	Message    string
	Key        string
	Workers    int
	LogLevel   string
	HideBlocks bool
}

// -----------------------------------------------------------------------------

// Load reads a JSON config file. Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides and fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Message != "" {
		c.Message = flags.Message
	}
	if flags.Key != "" {
		c.Key = flags.Key
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.HideBlocks {
		show := false
		c.ShowBlocks = &show
	}

	if c.Message == "" {
		c.Message = DefaultMessage
	}
	if c.Key == "" {
		c.Key = DefaultKey
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = "error"
	}
	if c.ShowBlocks == nil {
		show := true
		c.ShowBlocks = &show
	}
}

// TEAKey parses the hex key. Spaces are ignored so "A56BABCD 000FF123 ..." works too.
func (c *Config) TEAKey() (tea.Key, error) {
	material, err := hex.DecodeString(strings.ReplaceAll(c.Key, " ", ""))
	if err != nil {
		return tea.Key{}, fmt.Errorf("config: key: %w", err)
	}
	key, err := tea.KeyFromBytes(material)
	if err != nil {
		return tea.Key{}, fmt.Errorf("config: key: %w", err)
	}
	return key, nil
}

// Level maps the configured log level name to a pion log level.
func (c *Config) Level() (logging.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "disabled", "off":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	}
	return logging.LogLevelDisabled, fmt.Errorf("config: unknown log level %q", c.LogLevel)
}
