// Package config loads optional YAML overrides for the canonicalization
// tables and default worker count.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/temporal-IPA/hewiktparse/internal/grammar"
)

// Config is the optional --config file shape. Every field is a table
// override; an absent or empty map leaves the built-in table untouched.
// Workers, when non-zero, is the default concurrency before --workers
// overrides it.
type Config struct {
	Workers      int               `yaml:"workers"`
	Gender       map[string]string `yaml:"gender"`
	PartOfSpeech map[string]string `yaml:"part_of_speech"`
	IPA          map[string]string `yaml:"ipa"`
	FormTags     map[string]string `yaml:"form_tags"`
}

// Load reads and parses a YAML config file. It does not apply the
// config; call Apply to merge it into the package-level canonicalization
// tables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &c, nil
}

// Apply merges every table override in c into the grammar package's
// canonicalization tables. Flags applied by the caller afterward always
// win over a config file.
func Apply(c *Config) {
	if c == nil {
		return
	}
	for k, v := range c.Gender {
		grammar.GenderTable[k] = v
	}
	for k, v := range c.PartOfSpeech {
		grammar.PartOfSpeechTable[k] = v
	}
	if len(c.FormTags) > 0 {
		for k, v := range c.FormTags {
			grammar.FormTagTable[k] = v
		}
		grammar.RebuildFormTagKeys()
	}
	if len(c.IPA) > 0 {
		for k, v := range c.IPA {
			grammar.IPATable[k] = v
		}
		grammar.RebuildIPAPattern()
	}
}
