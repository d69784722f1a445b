package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// PipelineProfile is a named pass pipeline loaded from a pipeline file.
type PipelineProfile struct {
	// The name the profile is selected by.
	Name string `toml:"name"`

	// The operation name the pipeline is anchored at.  Defaults to
	// "builtin.module".
	Anchor string `toml:"anchor"`

	// The passes to run, in order.  The entries are joined with commas
	// verbatim into one textual pipeline before parsing, so an entry may
	// itself be a nested pipeline fragment such as "func.func(cse)".
	Passes []string `toml:"passes"`
}

// Config is the top-level structure of a TOML pipeline file:
//
//	[[pipeline]]
//	name = "cleanup"
//	anchor = "func.func"
//	passes = ["cse", "canonicalize"]
type Config struct {
	Pipelines []PipelineProfile `toml:"pipeline"`
}

// loadConfig reads and validates a pipeline file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(cfg.Pipelines))
	for i := range cfg.Pipelines {
		profile := &cfg.Pipelines[i]

		if profile.Name == "" {
			return nil, fmt.Errorf("%s: pipeline %d is missing a name", path, i+1)
		}

		if _, ok := seen[profile.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate pipeline profile %q", path, profile.Name)
		}
		seen[profile.Name] = struct{}{}

		if profile.Anchor == "" {
			profile.Anchor = "builtin.module"
		}

		if len(profile.Passes) == 0 {
			return nil, fmt.Errorf("%s: pipeline profile %q has no passes", path, profile.Name)
		}
	}

	return &cfg, nil
}

// Profile looks up a pipeline profile by name.
func (c *Config) Profile(name string) (profile PipelineProfile, exists bool) {
	for _, p := range c.Pipelines {
		if p.Name == name {
			return p, true
		}
	}

	return PipelineProfile{}, false
}
