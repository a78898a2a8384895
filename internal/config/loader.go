// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Log:     LogConfig{Level: "info", Format: "text"},
		Routing: RoutingConfig{BusWaitTime: 6, BusVelocity: 40, Algorithm: "dijkstra"},
		Cache:   CacheConfig{RouteQueries: 1024},
		Storage: StorageConfig{Backend: "file", Path: "transport.db"},
	}
}

// Load reads and validates the configuration at path. An empty path yields
// Default.
func Load(path string) (*AppConfig, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return cfg, nil
}
