// Package config loads, normalizes, and validates speechprep configuration.
//
// Every path and threshold ships with a compiled-in default so the tool runs
// with no arguments at all; an optional TOML file at
// ~/.config/speechprep/config.toml (or a path passed via --config) overrides
// individual values. Paths are tilde-expanded and validation produces clear
// errors before any filesystem work begins.
package config
