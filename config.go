package bcalc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReviewConfig describes the push-for-review side action. Command, when
// set, replaces the git push line built from Remote and Branch.
type ReviewConfig struct {
	Remote  string `yaml:"remote"`
	Branch  string `yaml:"branch"`
	Command string `yaml:"command"`
}

type Config struct {
	Review ReviewConfig `yaml:"review"`
}

func DefaultConfig() *Config {
	return &Config{
		Review: ReviewConfig{
			Remote: "origin",
			Branch: "refs/for/main",
		},
	}
}

// LoadConfig reads a yaml config file, unmarshalling over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}
