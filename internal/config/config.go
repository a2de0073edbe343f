// Package config provides centralized configuration management for the
// converters. Settings come from environment variables with sensible
// defaults and are validated on startup to fail fast on misconfiguration.
package config

// Config holds all converter configuration.
type Config struct {
	Sources SourcesConfig
	Logging LoggingConfig
}

// SourcesConfig holds the layout of the local source-file tree.
type SourcesConfig struct {
	// Dir is the base directory holding source workbooks, laid out as
	// <dir>/<source_group>/<source_uid>.xlsx (default: sources)
	Dir string `env:"SOURCES_DIR" default:"sources"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
