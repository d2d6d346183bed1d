package config

import (
	"io/fs"
	"strconv"
)

// FileName is the optional per-project configuration file.
const FileName = "cargolock.toml"

// EnvPrefix prefixes environment overrides. CARGOLOCK_LOCKFILE_NAME sets
// lockfile.name.
const EnvPrefix = "CARGOLOCK_"

// Config is the merged configuration.
type Config struct {
	Lockfile Lockfile `koanf:"lockfile"`
	Log      Log      `koanf:"log"`
}

// Lockfile controls where and how lockfiles are written.
type Lockfile struct {
	Name string `koanf:"name"`
	// Mode is an octal permission string such as "0644".
	Mode string `koanf:"mode"`
}

// Log holds the default verbosity; -v flags add to it.
type Log struct {
	Verbosity int `koanf:"verbosity"`
}

// FileMode parses Lockfile.Mode.
func (l Lockfile) FileMode() (fs.FileMode, error) {
	mode, err := strconv.ParseUint(l.Mode, 8, 32)
	if err != nil {
		return 0, err
	}
	return fs.FileMode(mode).Perm(), nil
}
