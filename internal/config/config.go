package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/runger/parcel/internal/entry"
	"github.com/runger/parcel/internal/store"
)

// FinderConfig overrides how the external fuzzy finder is invoked.
type FinderConfig struct {
	// Command is the finder binary. Empty means fzf.
	Command string `yaml:"command"`
	// Args replaces the default finder flags entirely when non-empty.
	// Mostly useful for alternative finders and for tests.
	Args []string `yaml:"args"`
}

// Config is the parsed parcel definition file.
type Config struct {
	// Parcels maps parcel names to their raw entry strings.
	Parcels map[string][]string `yaml:"parcels"`

	// AllowShell enables sh: entries. Shell entries run arbitrary
	// commands through the platform shell; off unless opted in.
	AllowShell bool `yaml:"allow_shell"`

	// Opener overrides the platform open command (e.g. "xdg-open").
	Opener string `yaml:"opener"`

	// Finder overrides the external fuzzy-finder invocation.
	Finder FinderConfig `yaml:"finder"`
}

// LoadFromFile reads and parses the parcel file at path. Unlike a
// settings file, a missing parcel file is an error: without it there is
// nothing to launch.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parcel file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse parcel file %s: %w", path, err)
	}
	return &cfg, nil
}

// Classifier returns the entry classifier configured by this file.
func (c *Config) Classifier() entry.Classifier {
	return entry.Classifier{AllowShell: c.AllowShell}
}

// Store classifies every entry and builds the immutable parcel store.
func (c *Config) Store() *store.Store {
	return store.Build(c.Parcels, c.Classifier())
}
