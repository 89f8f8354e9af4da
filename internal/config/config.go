package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	API struct {
		// BaseURL is the root of the remote REST backend, without a trailing slash.
		BaseURL string `yaml:"base_url" env:"ITEMS_API_BASE"`
		// Timeout is the per-request ceiling; a request past it is treated as failed.
		Timeout string `yaml:"timeout" env:"ITEMS_API_TIMEOUT"`
	} `yaml:"api"`

	State struct {
		// Dir holds the persisted session files (token and user profile).
		Dir string `yaml:"dir" env:"ITEMS_STATE_DIR"`
	} `yaml:"state"`

	Logging struct {
		Level  string `yaml:"level" env:"ITEMS_LOG_LEVEL"`
		Format string `yaml:"format" env:"ITEMS_LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	config.API.BaseURL = strings.TrimRight(config.API.BaseURL, "/")
	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.API.BaseURL = "http://localhost:8080"
	config.API.Timeout = "15s"

	config.Logging.Level = "info"
	config.Logging.Format = "console"

	if dir, err := os.UserConfigDir(); err == nil {
		config.State.Dir = filepath.Join(dir, "items-admin")
	} else {
		config.State.Dir = ".items-admin"
	}
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if _, err := url.Parse(config.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if _, err := time.ParseDuration(config.API.Timeout); err != nil {
		return fmt.Errorf("api.timeout is not a valid duration: %w", err)
	}
	if config.State.Dir == "" {
		return fmt.Errorf("state.dir must not be empty")
	}
	return nil
}

// RequestTimeout returns the parsed per-request timeout.
// validateConfig has already checked that the duration parses.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}
