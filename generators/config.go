package generators

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed config.toml
var defaults []byte

// Config carries the fixed generation surface. It is threaded explicitly
// into every generation entry point so a run is pure with respect to it.
type Config struct {
	// Package is the package name emitted into every generated file.
	Package string `toml:"package"`
	// Exclude lists commands never emitted, their per call shape does
	// not fit the one method per command model.
	Exclude []string `toml:"exclude"`
	// Rename maps a command name to an overriding exposed Go name.
	Rename map[string]string `toml:"rename"`
	// Aliases maps a canonical command name to an additional legacy
	// alias name emitted right after it as a deprecated forwarder.
	Aliases map[string]string `toml:"aliases"`
	// Features maps a command or group name to a build tag name
	// guarding the emitted item.
	Features map[string]string `toml:"features"`
	// IgnoreMultiple lists commands emitted with repeated arguments
	// collapsed to single values.
	IgnoreMultiple []string `toml:"ignore_multiple"`
}

// DefaultConfig decodes the embedded defaults document.
func DefaultConfig() (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(defaults, &cfg); err != nil {
		return cfg, fmt.Errorf("embedded config can't be decoded, %w", err)
	}
	return cfg, nil
}

func (c Config) excluded(name string) bool {
	for _, e := range c.Exclude {
		if e == name {
			return true
		}
	}
	return false
}

func (c Config) ignoreMultiple(name string) bool {
	for _, e := range c.IgnoreMultiple {
		if e == name {
			return true
		}
	}
	return false
}
