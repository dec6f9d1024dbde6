package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMemoryDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("PORT", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("DB_QUERY_TIMEOUT", "")
	t.Setenv("DB_CONNECT_RETRIES", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.DBQueryTimeout)
	assert.Equal(t, 5, cfg.DBConnectRetries)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadConfigPostgresRequiresURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("POSTGRES_DB_URL", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "POSTGRES_DB_URL")
}

func TestLoadConfigUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unknown STORE_DRIVER")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("POSTGRES_DB_URL", "postgres://localhost:5432/invoices")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_QUERY_TIMEOUT", "5")
	t.Setenv("DB_CONNECT_RETRIES", "0")
	t.Setenv("LOG_FORMAT", "xml")
	t.Setenv("METRICS_ENABLED", "no")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.DBQueryTimeout)
	assert.Equal(t, 0, cfg.DBConnectRetries)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.MetricsEnabled)
}

func TestGetEnvIntInvalid(t *testing.T) {
	t.Setenv("MAX_SOMETHING", "ten")
	assert.Equal(t, 7, getEnvInt("MAX_SOMETHING", 7))
}
