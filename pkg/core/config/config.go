// ============================================================================
// complexkit - Complex Number Toolkit
// ============================================================================
//
// Package:     config
// Description: Typed application configuration loaded from TOML or YAML
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/complexkit/foundation/core/error"
	mdwlog "github.com/msto63/complexkit/foundation/core/log"
)

// EnvConfigPath names the environment variable pointing at a config file
const EnvConfigPath = "COMPLEXKIT_CONFIG"

// EnvLogLevel overrides general.log_level when set
const EnvLogLevel = "COMPLEXKIT_LOG_LEVEL"

// Output styles
const (
	StylePlain  = "plain"
	StyleStyled = "styled"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	History HistoryConfig `toml:"history" yaml:"history"`

	// path of the file the config was read from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Style string `toml:"style" yaml:"style"`
}

// HistoryConfig controls the calculation history database
type HistoryConfig struct {
	Enabled      bool   `toml:"enabled" yaml:"enabled"`
	Path         string `toml:"path" yaml:"path"`
	DefaultLimit int    `toml:"default_limit" yaml:"default_limit"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{History: HistoryConfig{Enabled: true}}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithSeverity(mdwerror.SeverityHigh).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg := &Config{History: HistoryConfig{Enabled: true}, source: path}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, cfg)
	default:
		_, err = toml.Decode(string(content), cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithSeverity(mdwerror.SeverityHigh).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by COMPLEXKIT_CONFIG, then tries the
// default locations, and falls back to Default when none exists.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	return []string{
		"./complexkit.toml",
		"./complexkit.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/complexkit/config.toml"),
	}
}

// Source returns the file the configuration came from, or "" for defaults
func (c *Config) Source() string {
	return c.source
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalidConfig("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalidConfig("general.log_format", c.General.LogFormat, err.Error())
	}
	if c.Output.Style != StylePlain && c.Output.Style != StyleStyled {
		return invalidConfig("output.style", c.Output.Style, "must be plain or styled")
	}
	if c.History.DefaultLimit < 0 {
		return invalidConfig("history.default_limit", c.History.DefaultLimit, "must not be negative")
	}
	return nil
}

func invalidConfig(key string, value interface{}, reason string) error {
	return mdwerror.New(fmt.Sprintf("invalid %s: %s", key, reason)).
		WithCode(mdwerror.CodeInvalidConfig).
		WithSeverity(mdwerror.SeverityHigh).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "complexkit"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Output.Style == "" {
		c.Output.Style = StylePlain
	}

	if c.History.Path == "" {
		c.History.Path = "$HOME/.complexkit/history.db"
	}
	if c.History.DefaultLimit == 0 {
		c.History.DefaultLimit = 20
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.History.Path = os.ExpandEnv(c.History.Path)
}

func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.General.LogLevel = level
	}
}
