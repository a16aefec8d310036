// Package config loads the Nexus startup configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path (from -config), with tilde expansion
//  2. Otherwise $XDG_CONFIG_HOME/nexus/config.toml
//  3. A missing file yields Default()
//  4. Empty or whitespace fields keep their defaults
//
// # TOML Format
//
//	workspace = "Nexus BI"
//	user_initials = "JD"
//	insight_delay = "1500ms"
//	log_file = "~/.local/state/nexus/nexus.log"
//
// insight_delay accepts any time.ParseDuration string and must not be
// negative. Malformed values fail with a "parse config" error instead of
// silently falling back.
package config
