// Package config loads the YAML run configuration for the candb CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSource is the source path used when the configuration names none.
const DefaultSource = "EVT_CAN.dbc"

// RunConfig is the root of a YAML run configuration file.
type RunConfig struct {
	// Source is the path of the database file to parse.
	Source string `yaml:"source"`

	// Name is the display name for the built database.
	Name string `yaml:"name,omitempty"`

	// Lenient finalizes unterminated messages instead of failing the parse.
	Lenient bool `yaml:"lenient,omitempty"`

	// Dump prints the whole parsed model after the summary.
	Dump bool `yaml:"dump,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *RunConfig {
	return &RunConfig{Source: DefaultSource}
}

// LoadFile loads and parses a YAML run configuration from the given path.
func LoadFile(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a RunConfig.
func Parse(data []byte) (*RunConfig, error) {
	var rc RunConfig

	err := yaml.Unmarshal(data, &rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&rc)

	return &rc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(rc *RunConfig) {
	if rc.Source == "" {
		rc.Source = DefaultSource
	}
}
