// Package config loads and validates the TOML configuration shared by the
// daemon and the CLI.
//
// Load applies repository defaults, decodes the config file when present,
// normalizes paths and environment overrides, and validates the result.
// Configuration problems fail fast at load time so the matching pipeline
// never runs against a half-valid setup.
package config
