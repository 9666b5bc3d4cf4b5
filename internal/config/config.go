// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles protogen project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultFileName is where generate looks for project defaults.
const DefaultFileName = "protogen.yaml"

// Config represents the protogen.yaml project configuration file. All
// fields except Version are optional defaults that flags override.
type Config struct {
	Version     int    `yaml:"version"`
	Package     string `yaml:"package,omitempty"`
	RootMessage string `yaml:"root_message,omitempty"`
	TypePrefix  string `yaml:"type_prefix,omitempty"`
	Output      string `yaml:"output,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	return nil
}
