package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
)

type serverConfig struct {
	Log      config.Log
	HTTP     config.HTTP
	Storage  config.Storage
	Postgres config.Postgres
	Otel     config.Otel
}

func TestNew(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		cfg, err := config.New[serverConfig]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
		assert.Equal(t, uint32(8000), cfg.HTTP.Port)
		assert.Equal(t, "http://localhost:4200", cfg.HTTP.CorsAllowedOrigin)
		assert.Equal(t, config.StorageDriverPostgres, cfg.Storage.Driver)
		assert.Equal(t, 5432, cfg.Postgres.Port)
		assert.Equal(t, time.Hour, cfg.Postgres.MaxConnLifetime)
		assert.Equal(t, "product-catalog", cfg.Otel.ServiceName)
		assert.InDelta(t, 0.1, cfg.Otel.TraceIDRatio, 1e-9)
		assert.Empty(t, cfg.Otel.CollectorURL)
	})

	t.Run("Should read environment", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("HTTP_CORS_ALLOWED_ORIGIN", "https://shop.example.com")
		t.Setenv("STORAGE_DRIVER", "sqlite")
		t.Setenv("SQLITE_DSN", "file::memory:")

		cfg, err := config.New[serverConfig]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
		assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
		assert.Equal(t, uint32(9090), cfg.HTTP.Port)
		assert.Equal(t, "https://shop.example.com", cfg.HTTP.CorsAllowedOrigin)
		assert.Equal(t, config.StorageDriverSQLite, cfg.Storage.Driver)
		assert.Equal(t, "file::memory:", cfg.Storage.SQLiteDSN)
	})

	t.Run("Should reject unknown storage driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mysql")

		_, err := config.New[serverConfig]()
		assert.Error(t, err)
	})

	t.Run("Should reject unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")

		_, err := config.New[serverConfig]()
		assert.Error(t, err)
	})
}

func TestLogFormat(t *testing.T) {
	var f config.LogFormat
	require.NoError(t, f.UnmarshalText([]byte("Text")))
	assert.Equal(t, config.LogFormatText, f)
	assert.Equal(t, "TEXT", f.String())
	assert.Equal(t, "LogFormat(7)", config.LogFormat(7).String())
}
