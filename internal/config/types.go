package config

// Source represents where a configuration value came from.
type Source string

const (
	SourceDefault  Source = "default"
	SourceUserFile Source = "user file"
	SourceProjFile Source = "project file"
	SourceEnv      Source = "environment"
	SourceFlag     Source = "flag"
)

// Default values.
const (
	DefaultFilter    = "all"
	DefaultLogDir    = "~/.tidy/logs"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for tidy.
type Config struct {
	// Filter mode shown at startup: all, active or completed.
	DefaultFilter string `toml:"default_filter"`

	// Optional snapshot file. Empty keeps the session in memory only.
	SnapshotFile string `toml:"snapshot_file"`
	// Write the snapshot back on quit.
	Autosave bool `toml:"autosave"`

	// Logging
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`

	// Computed at load time
	ProjectRoot string            `toml:"-"`
	Files       []string          `toml:"-"` // config files that were read, lowest priority first
	Sources     map[string]Source `toml:"-"` // keyed by TOML name
}

// fields lists the configurable keys in display order.
var fields = []string{
	"default_filter",
	"snapshot_file",
	"autosave",
	"log_dir",
	"log_level",
	"log_format",
	"log_timestamps",
}

// Fields returns the configurable keys in display order.
func Fields() []string {
	return append([]string(nil), fields...)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DefaultFilter = DefaultFilter
	cfg.SnapshotFile = ""
	cfg.Autosave = false
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = true

	cfg.Sources = make(map[string]Source, len(fields))
	for _, f := range fields {
		cfg.Sources[f] = SourceDefault
	}
}
