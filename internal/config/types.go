// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// RoutingConfig holds routing defaults used when a request omits routing_settings.
type RoutingConfig struct {
	BusWaitTime float64 `yaml:"bus_wait_time" validate:"gt=0,lte=1000"`
	BusVelocity float64 `yaml:"bus_velocity" validate:"gt=0,lte=1000"`
	Algorithm   string  `yaml:"algorithm" validate:"oneof=dijkstra floyd_warshall"`
}

// CacheConfig sizes the route-query LRU. Zero disables it.
type CacheConfig struct {
	RouteQueries int `yaml:"route_queries" validate:"gte=0"`
}

// StorageConfig selects where snapshots live. Path may be left empty when
// requests carry serialization_settings.
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"oneof=file sqlite"`
	Path    string `yaml:"path"`
}

// AppConfig is the full application configuration.
type AppConfig struct {
	Log     LogConfig     `yaml:"log"`
	Routing RoutingConfig `yaml:"routing"`
	Cache   CacheConfig   `yaml:"cache"`
	Storage StorageConfig `yaml:"storage"`
}
