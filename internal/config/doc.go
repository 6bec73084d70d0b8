// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.tidy/tidy.toml or OS-specific config directory)
// 3. Project config file (tidy.toml or .tidy.toml in the working directory)
// 4. Environment variables (TIDY_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.tidy/tidy.toml (preferred)
// - Windows: %APPDATA%\tidy\tidy.toml
// - macOS: ~/Library/Application Support/tidy/tidy.toml
// - Linux/BSD: $XDG_CONFIG_HOME/tidy/tidy.toml or ~/.config/tidy/tidy.toml
package config
