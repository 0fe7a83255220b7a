// Package bootstrap builds the pieces shared by the service and loader
// binaries from the loaded configuration.
package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/clients"
	"github.com/jsamuelsen/journal-catalog/internal/adapters/clients/sparql"
	"github.com/jsamuelsen/journal-catalog/internal/adapters/sqlstore"
	"github.com/jsamuelsen/journal-catalog/internal/platform/config"
	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

// Profile returns the configuration profile: flagValue when set, then
// APP_ENVIRONMENT, then "local".
func Profile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if env := os.Getenv("APP_ENVIRONMENT"); env != "" {
		return env
	}

	return "local"
}

// LoadConfig loads and validates the configuration for profile.
func LoadConfig(profile string) (*config.Config, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoggingConfig maps the log section onto the logging package.
func LoggingConfig(cfg *config.Config) *logging.Config {
	return &logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}
}

// Stores holds the configured backing stores. A store whose address is
// not configured is nil.
type Stores struct {
	Relational *sqlstore.Store
	Graph      *sparql.Store
}

// NewStores builds the relational and graph stores named in cfg.
func NewStores(cfg *config.Config, logger *slog.Logger) (Stores, error) {
	var stores Stores

	if cfg.Stores.Relational.DSN != "" {
		stores.Relational = sqlstore.New(sqlstore.Config{
			DSN:    cfg.Stores.Relational.DSN,
			Logger: logger,
		})
	}

	if cfg.Stores.Graph.Endpoint != "" {
		graph, err := sparql.New(sparql.Config{
			Endpoint: cfg.Stores.Graph.Endpoint,
			Client: clients.Config{
				Timeout:   cfg.Client.Timeout,
				Retry:     cfg.Client.Retry,
				Circuit:   cfg.Client.CircuitBreaker,
				Transport: cfg.Client.Transport,
			},
			BatchSize:        cfg.Stores.Graph.BatchSize,
			UpdatesPerSecond: cfg.Stores.Graph.UpdatesPerSecond,
			Logger:           logger,
		})
		if err != nil {
			return Stores{}, fmt.Errorf("creating graph store: %w", err)
		}

		stores.Graph = graph
	}

	return stores, nil
}
