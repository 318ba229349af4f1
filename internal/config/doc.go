// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.projman/projman.toml or OS-specific config directory)
// 3. Project config file (projman.toml or .projman.toml in the working directory)
// 4. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.projman/projman.toml (preferred)
// - Windows: %APPDATA%\projman\projman.toml
// - macOS: ~/Library/Application Support/projman/projman.toml
// - Linux/BSD: $XDG_CONFIG_HOME/projman/projman.toml or ~/.config/projman/projman.toml
//
// Project-level config locations (overrides user config):
// - ./projman.toml (preferred)
// - ./.projman.toml
package config
