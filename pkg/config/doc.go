// Package config handles configuration management for termout.
// It layers the embedded defaults, a TOML or YAML user file, TERMOUT_
// environment variables and command-line flags, in that order.
package config
