package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by every command.
const (
	FlagFilter    = "filter"
	FlagSnapshot  = "snapshot"
	FlagAutosave  = "autosave"
	FlagLogDir    = "log-dir"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
)

// RegisterFlags defines the configuration flags on fs. Defaults are left
// empty: only flags the user sets override lower-priority sources.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagFilter, "", "Filter shown at startup (all, active, completed)")
	fs.String(FlagSnapshot, "", "Snapshot file to load tasks from (.json, .yaml)")
	fs.Bool(FlagAutosave, false, "Write the snapshot file back on quit")
	fs.String(FlagLogDir, "", "Directory for session logs")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFormat, "", "Log format (text, json, logfmt)")
}

// applyFlags copies every flag the user set into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	strFlags := []struct {
		name   string
		field  string
		target *string
	}{
		{FlagFilter, "default_filter", &cfg.DefaultFilter},
		{FlagSnapshot, "snapshot_file", &cfg.SnapshotFile},
		{FlagLogDir, "log_dir", &cfg.LogDir},
		{FlagLogLevel, "log_level", &cfg.LogLevel},
		{FlagLogFormat, "log_format", &cfg.LogFormat},
	}
	for _, f := range strFlags {
		if fs.Lookup(f.name) == nil || !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetString(f.name)
		if err != nil {
			return err
		}
		*f.target = v
		cfg.Sources[f.field] = SourceFlag
	}

	if fs.Lookup(FlagAutosave) != nil && fs.Changed(FlagAutosave) {
		v, err := fs.GetBool(FlagAutosave)
		if err != nil {
			return err
		}
		cfg.Autosave = v
		cfg.Sources["autosave"] = SourceFlag
	}
	return nil
}
