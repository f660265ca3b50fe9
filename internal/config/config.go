package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAddress is the address the custom handler listens on when the
// config does not say otherwise.
const DefaultAddress = "127.0.0.1:8080"

// Config is the dev harness configuration.
type Config struct {
	// Address is the listen address for the custom handler endpoint.
	Address string `yaml:"address"`

	// DisabledTools lists tool names that are not registered.
	DisabledTools []string `yaml:"disabledTools"`

	// Weather configures the sample weather tool.
	Weather Weather `yaml:"weather"`
}

// Weather holds the sample weather tool's client settings.
type Weather struct {
	// Endpoint is the base URL of the weather API.
	Endpoint string `yaml:"endpoint"`
}

// Default returns a configuration with every tool enabled.
func Default() *Config {
	return &Config{
		Address:       DefaultAddress,
		DisabledTools: []string{},
	}
}

// LoadFile loads configuration from a YAML file. A missing file or empty
// path yields the default configuration.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load loads configuration from an io.Reader.
func Load(r io.Reader) (*Config, error) {
	config := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading config data: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config YAML: %w", err)
	}

	if config.Address == "" {
		config.Address = DefaultAddress
	}
	return config, nil
}

// IsToolDisabled checks whether a tool name is in the disabled list.
func (c *Config) IsToolDisabled(name string) bool {
	for _, disabled := range c.DisabledTools {
		if disabled == name {
			return true
		}
	}
	return false
}
