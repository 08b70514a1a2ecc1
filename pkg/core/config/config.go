// Package config loads scraper settings from a YAML file, falling back to
// built-in defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds the tunables of the scraper service.
type Config struct {
	Listen              string `yaml:"listen"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	MaxRetries          int    `yaml:"max_retries"`
	MaxPages            int    `yaml:"max_pages"`
	OverridesPath       string `yaml:"overrides_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:              ":8080",
		FetchTimeoutSeconds: 10,
		MaxRetries:          3,
		MaxPages:            5,
	}
}

// Load reads path over the defaults. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FetchTimeout returns the per-request timeout as a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
