package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tidy configuration file
# Values can be overridden by TIDY_* environment variables or CLI flags

# Filter shown at startup: all, active or completed
default_filter = "all"

# Snapshot file to load tasks from (.json, .yaml or .yml).
# Leave unset to keep tasks in memory for the session only.
# snapshot_file = "tasks.json"

# Write the snapshot file back on quit
autosave = false

# Session log directory (supports ~ expansion)
log_dir = "~/.tidy/logs"

# Logging: debug, info, warn, error
log_level = "info"

# Log format: text, json, logfmt
log_format = "text"

# Include timestamps in log lines
log_timestamps = true
`
}
