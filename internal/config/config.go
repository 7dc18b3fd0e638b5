// Package config handles configuration loading and shared data structures.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Supported source formats.
const (
	FormatTrack  = "track"
	FormatPlain  = "plain"
	FormatTagged = "tagged"
)

// Config represents the root configuration file structure.
type Config struct {
	Title   string   `yaml:"title,omitempty" json:"title,omitempty"`
	Sources []Source `yaml:"sources" json:"sources"`
}

// Source describes a single point source. Exactly one of Inline, File or URL
// supplies the data; Inline wins over File, File over URL.
type Source struct {
	// defining points directly in config.yaml, in the source's own layout
	Inline *yaml.Node `yaml:"inline,omitempty" json:"-"`

	Name   string `yaml:"name" json:"name"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file,omitempty" json:"-"`
	URL    string `yaml:"url,omitempty" json:"-"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
