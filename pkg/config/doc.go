// Package config handles configuration for the cargolock command.
// Values are layered: embedded defaults, then an optional cargolock.toml in
// the project directory, then CARGOLOCK_* environment variables.
package config
