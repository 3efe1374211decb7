package config

import (
	"sort"

	"github.com/lyra-labs/lyra/internal/guide"
)

// CurrentConfigVersion is the schema version for the registry file.
// Increment when making breaking changes to the structure.
const CurrentConfigVersion = 1

// Config represents the complete .lyra.yaml registry file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Lang selects the CLI message language: "en" or "ko".
	Lang string `yaml:"lang" mapstructure:"lang"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`

	// Environments known to this registry, in file order.
	Environments []guide.Environment `yaml:"environments" mapstructure:"environments"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Lang:    "en",
		Output: OutputConfig{
			Color: "auto",
		},
		Environments: []guide.Environment{},
	}
}

// Lookup finds an environment by ID, falling back to an exact name match.
// IDs win so a name that happens to equal another environment's ID can't
// shadow it.
func (c *Config) Lookup(ref string) (guide.Environment, bool) {
	for _, env := range c.Environments {
		if env.ID == ref {
			return env, true
		}
	}
	for _, env := range c.Environments {
		if env.Name != "" && env.Name == ref {
			return env, true
		}
	}
	return guide.Environment{}, false
}

// IDs returns the environment IDs in sorted order.
func (c *Config) IDs() []string {
	ids := make([]string, 0, len(c.Environments))
	for _, env := range c.Environments {
		ids = append(ids, env.ID)
	}
	sort.Strings(ids)
	return ids
}
