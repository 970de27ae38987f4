// ============================================================================
// complexkit - Complex Number Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from config
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/complexkit/foundation/core/log"
	"github.com/msto63/complexkit/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name, shown as the logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json" or "text"
	Format string

	// Destination, stderr when nil
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromAppConfig derives a logger configuration from the application config
func FromAppConfig(name string, cfg *config.Config) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg != nil {
		lc.Level = cfg.General.LogLevel
		lc.Format = cfg.General.LogFormat
	}
	return lc
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        ParseLevel(cfg.Level),
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// ParseLevel converts a string level, falling back to info when unknown
func ParseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelInfo
	}
	return parsed
}
