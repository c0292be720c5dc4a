package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the optional configuration file is looked up.
const DefaultPath = ".fluttersweep.yaml"

// Config represents the complete application configuration. Every field is
// optional; zero values fall back to built-in defaults.
type Config struct {
	Clean CleanConfig `yaml:"clean"`
	Scan  ScanConfig  `yaml:"scan"`
}

// CleanConfig overrides the external clean command
type CleanConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// ScanConfig contains scan behavior defaults
type ScanConfig struct {
	ExcludeDirs []string `yaml:"exclude_dirs"`
	Recursive   *bool    `yaml:"recursive"`
	Verbose     bool     `yaml:"verbose"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Clean: CleanConfig{Command: "flutter", Args: []string{"clean"}},
		Scan:  ScanConfig{ExcludeDirs: []string{"node_modules"}},
	}
}

// RecursiveDefault returns the configured default for recursive scanning,
// true when unset.
func (c *Config) RecursiveDefault() bool {
	if c.Scan.Recursive == nil {
		return true
	}
	return *c.Scan.Recursive
}

// Load reads and parses the configuration from the specified YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
