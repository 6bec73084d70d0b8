package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from TIDY_* environment variables.
func loadFromEnv(cfg *Config) {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			cfg.Sources[field] = SourceEnv
		}
	}
	setBool := func(env, field string, target *bool) {
		if v := os.Getenv(env); v != "" {
			*target = boolFromString(v)
			cfg.Sources[field] = SourceEnv
		}
	}

	setString("TIDY_FILTER", "default_filter", &cfg.DefaultFilter)
	setString("TIDY_SNAPSHOT", "snapshot_file", &cfg.SnapshotFile)
	setBool("TIDY_AUTOSAVE", "autosave", &cfg.Autosave)
	setString("TIDY_LOG_DIR", "log_dir", &cfg.LogDir)
	setString("TIDY_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("TIDY_LOG_FORMAT", "log_format", &cfg.LogFormat)
	setBool("TIDY_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps)
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
