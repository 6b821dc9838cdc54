// Package config loads tallylog settings from a YAML file and an optional
// .env file and turns them into a logger.Config.
//
// Precedence, later wins:
//   - LOG_LEVEL from the process environment (or the .env file)
//   - the YAML file
//   - command-line flags, applied by internal/cmd
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mordilloSan/tallylog/logger"
)

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the on-disk configuration.
type Config struct {
	// Level is the threshold level code; nil leaves it to LOG_LEVEL.
	Level *uint `yaml:"level,omitempty"`
	// Color is one of auto, always or never. Empty means auto.
	Color string `yaml:"color,omitempty"`
	// MessageLimit truncates rendered messages; 0 keeps the default, negative disables.
	MessageLimit int `yaml:"message_limit,omitempty"`
	// EnvFile is a dotenv file loaded before LOG_LEVEL is read.
	EnvFile string `yaml:"env_file,omitempty"`
}

// Parse parses YAML data into a Config, rejecting unknown fields.
// Empty input returns a zero-value Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Load reads, parses and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: invalid value %q (want auto, always or never)", c.Color)
	}
	return nil
}

// LoadEnv loads KEY=value pairs from a dotenv file into the process
// environment. Variables already set are not overridden.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Logger builds the logger configuration for output out.
func (c *Config) Logger(out io.Writer) logger.Config {
	lc := logger.Config{
		Output:       out,
		MessageLimit: c.MessageLimit,
	}
	if c.Level != nil {
		lc.Threshold = logger.Threshold(logger.Level(*c.Level))
	}
	switch c.Color {
	case ColorAlways:
		lc.Colorize = true
	case ColorNever:
		lc.Colorize = false
	default:
		lc.Colorize = logger.IsTerminal(out)
	}
	return lc
}
