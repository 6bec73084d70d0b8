package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/nibzard/tidy/internal/logging"
	"github.com/nibzard/tidy/internal/todo"
)

// Load loads configuration from defaults, config files, the environment and
// the already parsed flag set fs, in that priority order. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. User config file
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	// 3. Project config file (overrides user config)
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	// 4. Environment
	loadFromEnv(cfg)

	// 5. Flags
	if fs != nil {
		if err := applyFlags(cfg, fs); err != nil {
			return nil, fmt.Errorf("parsing flags: %w", err)
		}
	}

	// 6. Derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile decodes the TOML file at path over cfg and records which
// keys it defined.
func loadConfigFile(cfg *Config, path string, source Source) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	for _, f := range fields {
		if md.IsDefined(f) {
			cfg.Sources[f] = source
		}
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

// finalizeConfig computes derived values and validates the result.
func finalizeConfig(cfg *Config) error {
	filter, err := todo.ParseFilter(cfg.DefaultFilter)
	if err != nil {
		return fmt.Errorf("default_filter: %w", err)
	}
	cfg.DefaultFilter = string(filter)

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := logging.ParseFormatter(cfg.LogFormat); err != nil {
		return fmt.Errorf("log_format: %w", err)
	}

	cfg.LogDir = expandPath(cfg.LogDir)
	cfg.SnapshotFile = expandPath(cfg.SnapshotFile)

	if cfg.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.ProjectRoot = wd
	}

	if cfg.SnapshotFile != "" && !filepath.IsAbs(cfg.SnapshotFile) {
		cfg.SnapshotFile = filepath.Join(cfg.ProjectRoot, cfg.SnapshotFile)
	}
	if cfg.LogDir != "" && !filepath.IsAbs(cfg.LogDir) {
		cfg.LogDir = filepath.Join(cfg.ProjectRoot, cfg.LogDir)
	}

	return nil
}

// Filter returns the configured startup filter.
func (c *Config) Filter() todo.Filter {
	if f, err := todo.ParseFilter(c.DefaultFilter); err == nil {
		return f
	}
	return todo.FilterAll
}

// Value returns the string form of the configuration value for key.
func (c *Config) Value(key string) string {
	switch key {
	case "default_filter":
		return c.DefaultFilter
	case "snapshot_file":
		return c.SnapshotFile
	case "autosave":
		return fmt.Sprint(c.Autosave)
	case "log_dir":
		return c.LogDir
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return fmt.Sprint(c.LogTimestamps)
	}
	return ""
}
