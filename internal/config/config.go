// Package config handles YAML configuration for the assistant.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the assistant looks for its config file.
const DefaultPath = "assistant.yaml"

// Config holds all assistant configuration.
type Config struct {
	Prompt   string `yaml:"prompt"`    // Input prompt shown before each line
	PageSize int    `yaml:"page_size"` // Records per page in paged listings
	Color    bool   `yaml:"color"`     // Enable styled output in the TUI
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Prompt:   ">>> ",
		PageSize: 10,
		Color:    true,
	}
}

// Load reads the YAML config file at path. If the file does not
// exist, defaults are returned without error. Invalid YAML or
// unknown fields are an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Prompt == "" {
		return errors.New("config: prompt cannot be empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("config: page_size must be positive, got %d", c.PageSize)
	}
	return nil
}
