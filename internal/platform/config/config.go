// Package config loads the catalog configuration from defaults, YAML files
// and APP_* environment variables using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "APP_"

// DirEnv names the variable that relocates the configs directory, so the
// loader can run from anywhere.
const DirEnv = EnvPrefix + "CONFIG_DIR"

// DefaultDir is where base.yaml and the profile files live.
const DefaultDir = "configs"

// Defaults that code outside this package refers to.
const (
	DefaultServerPort     = 8080
	DefaultMaxRequestSize = 1 << 20

	DefaultClientRetryMaxAttempts     = 3
	DefaultClientRetryMultiplier      = 2.0
	DefaultClientRetryJitterFactor    = 0.25
	DefaultClientCircuitMaxFailures   = 5
	DefaultClientCircuitHalfOpenLimit = 3

	DefaultTransportMaxIdleConns        = 100
	DefaultTransportMaxIdleConnsPerHost = 10
	DefaultTransportIdleConnTimeout     = 90 * time.Second

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28

	// DefaultGraphBatchSize is the number of journals per graph upload update.
	DefaultGraphBatchSize = 500
	// DefaultGraphUpdatesPerSecond paces SPARQL updates during bulk loads.
	DefaultGraphUpdatesPerSecond = 5.0

	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40

	DefaultHealthCheckTimeout = 2 * time.Second
)

// Config is the root configuration.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
	Stores    StoresConfig    `koanf:"stores"    validate:"required"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	MCP       MCPConfig       `koanf:"mcp"`
}

type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig adds a rolling JSON file next to the terminal output.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig enables OTLP trace export.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// ClientConfig tunes the resilient HTTP client used for SPARQL requests.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	Retry          RetryConfig          `koanf:"retry"           validate:"required"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
	Transport      TransportConfig      `koanf:"transport"       validate:"required"`
}

type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=10ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=100ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1.1,max=10"`
	JitterFactor    float64       `koanf:"jitter_factor"    validate:"min=0,max=1"`
}

type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// StoresConfig addresses the two backing stores. A store whose address is
// empty is not registered with the catalog.
type StoresConfig struct {
	Relational         RelationalStoreConfig `koanf:"relational"`
	Graph              GraphStoreConfig      `koanf:"graph"                validate:"required"`
	HealthCheckTimeout time.Duration         `koanf:"health_check_timeout" validate:"required,min=100ms"`
}

// RelationalStoreConfig addresses the category and area store: a SQLite
// file path or a postgres:// URL.
type RelationalStoreConfig struct {
	DSN string `koanf:"dsn" validate:"omitempty,relational_dsn"`
}

// GraphStoreConfig addresses the journal store's SPARQL endpoint.
type GraphStoreConfig struct {
	Endpoint         string  `koanf:"endpoint"           validate:"omitempty,url"`
	BatchSize        int     `koanf:"batch_size"         validate:"required,min=1,max=100000"`
	UpdatesPerSecond float64 `koanf:"updates_per_second" validate:"min=0"`
}

type CatalogConfig struct {
	// Parallel fans each query out to all sources concurrently.
	Parallel bool `koanf:"parallel"`
}

// RateLimitConfig throttles the API per client IP.
type RateLimitConfig struct {
	Enabled           bool    `koanf:"enabled"`
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"required_if=Enabled true,omitempty,gt=0"`
	Burst             int     `koanf:"burst"               validate:"required_if=Enabled true,omitempty,min=1"`
}

// MCPConfig mounts the Model Context Protocol endpoint on the HTTP server.
type MCPConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"    validate:"required_if=Enabled true,omitempty,startswith=/"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":        "journal-catalog",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "journal-catalog",
		"telemetry.sampling_rate": 1.0,

		"client.timeout":                           "30s",
		"client.retry.max_attempts":                DefaultClientRetryMaxAttempts,
		"client.retry.initial_interval":            "100ms",
		"client.retry.max_interval":                "5s",
		"client.retry.multiplier":                  DefaultClientRetryMultiplier,
		"client.retry.jitter_factor":               DefaultClientRetryJitterFactor,
		"client.circuit_breaker.max_failures":      DefaultClientCircuitMaxFailures,
		"client.circuit_breaker.timeout":           "30s",
		"client.circuit_breaker.half_open_limit":   DefaultClientCircuitHalfOpenLimit,
		"client.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"client.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"client.transport.idle_conn_timeout":       DefaultTransportIdleConnTimeout.String(),

		"stores.relational.dsn":           "",
		"stores.graph.endpoint":           "",
		"stores.graph.batch_size":         DefaultGraphBatchSize,
		"stores.graph.updates_per_second": DefaultGraphUpdatesPerSecond,
		"stores.health_check_timeout":     DefaultHealthCheckTimeout.String(),

		"catalog.parallel": false,

		"ratelimit.enabled":             false,
		"ratelimit.requests_per_second": DefaultRateLimitRPS,
		"ratelimit.burst":               DefaultRateLimitBurst,

		"mcp.enabled": true,
		"mcp.path":    "/mcp",
	}
}

// Load reads the configuration for profile from the directory named by
// APP_CONFIG_DIR, or ./configs.
func Load(profile string) (*Config, error) {
	dir := os.Getenv(DirEnv)
	if dir == "" {
		dir = DefaultDir
	}

	return LoadFrom(dir, profile)
}

// LoadFrom reads the configuration for profile from dir. Later layers win:
//  1. defaults
//  2. dir/base.yaml
//  3. dir/<profile>.yaml
//  4. APP_* environment variables
//
// Missing files are skipped.
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")
	known := defaults()

	layers := []struct {
		name string
		load func() error
	}{
		{"defaults", func() error { return k.Load(confmap.Provider(known, "."), nil) }},
		{"base config", func() error { return loadFileIfExists(k, filepath.Join(dir, "base.yaml")) }},
		{"profile " + profile, func() error {
			if profile == "" {
				return nil
			}

			return loadFileIfExists(k, filepath.Join(dir, profile+".yaml"))
		}},
		{"environment", func() error { return k.Load(env.Provider(EnvPrefix, ".", envKeyMapper(known)), nil) }},
	}

	for _, layer := range layers {
		if err := layer.load(); err != nil {
			return nil, fmt.Errorf("loading %s: %w", layer.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}

// envKeyMapper maps APP_STORES_GRAPH_BATCH_SIZE to stores.graph.batch_size.
// Known keys are matched first so underscores inside a key survive; other
// variables have every underscore replaced by a dot.
func envKeyMapper(known map[string]any) func(string) string {
	byEnv := make(map[string]string, len(known))
	for key := range known {
		byEnv[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if key, ok := byEnv[name]; ok {
			return key
		}

		return strings.ReplaceAll(name, "_", ".")
	}
}
