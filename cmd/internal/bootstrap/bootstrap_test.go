package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/platform/config"
)

func TestProfile(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("APP_ENVIRONMENT", "prod")
		assert.Equal(t, "dev", Profile("dev"))
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("APP_ENVIRONMENT", "prod")
		assert.Equal(t, "prod", Profile(""))
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("APP_ENVIRONMENT", "")
		assert.Equal(t, "local", Profile(""))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("APP_STORES_RELATIONAL_DSN", "/tmp/catalog.db")

	cfg, err := LoadConfig("test")
	require.NoError(t, err)

	assert.Equal(t, "journal-catalog", cfg.App.Name)
	assert.Equal(t, "/tmp/catalog.db", cfg.Stores.Relational.DSN)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("APP_STORES_GRAPH_ENDPOINT", "not a url")

	_, err := LoadConfig("test")
	assert.Error(t, err)
}

func TestLoggingConfig(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Name: "journal-catalog", Version: "1.2.3"},
		Log: config.LogConfig{
			Level:  "debug",
			Format: "pretty",
			File:   config.LogFileConfig{Enabled: true, Path: "/tmp/app.log", MaxSizeMB: 10},
		},
	}

	lc := LoggingConfig(cfg)

	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "pretty", lc.Format)
	assert.Equal(t, "journal-catalog", lc.Service)
	assert.Equal(t, "1.2.3", lc.Version)
	assert.True(t, lc.File.Enabled)
	assert.Equal(t, "/tmp/app.log", lc.File.Path)
	assert.Equal(t, 10, lc.File.MaxSizeMB)
}

func TestNewStores(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		stores, err := NewStores(&config.Config{}, nil)
		require.NoError(t, err)

		assert.Nil(t, stores.Relational)
		assert.Nil(t, stores.Graph)
	})

	t.Run("both configured", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Stores.Relational.DSN = "./data/relational.db"
		cfg.Stores.Graph.Endpoint = "http://127.0.0.1:9999/blazegraph/sparql"

		stores, err := NewStores(cfg, nil)
		require.NoError(t, err)

		require.NotNil(t, stores.Relational)
		require.NotNil(t, stores.Graph)
		assert.Equal(t, "./data/relational.db", stores.Relational.DbPathOrURL())
		assert.Equal(t, "http://127.0.0.1:9999/blazegraph/sparql", stores.Graph.DbPathOrURL())
	})

	t.Run("bad endpoint", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Stores.Graph.Endpoint = "ftp://example.org/sparql"

		_, err := NewStores(cfg, nil)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}
