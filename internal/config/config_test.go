package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, "pix_dashboard", cfg.Database.Database)
	assert.Equal(t, "America/Sao_Paulo", cfg.Dashboard.ReferenceTimezone)
	assert.Equal(t, "pix", cfg.Dashboard.DefaultAcquirer)
	assert.Equal(t, 60*time.Second, cfg.Dashboard.RefreshInterval)
	assert.Equal(t, 10, cfg.Dashboard.RankingLimit)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Logger.Development)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("REFERENCE_TIMEZONE", "America/Fortaleza")
	t.Setenv("DEFAULT_ACQUIRER", "efi")
	t.Setenv("REFRESH_INTERVAL", "2m")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "America/Fortaleza", cfg.Dashboard.ReferenceTimezone)
	assert.Equal(t, "efi", cfg.Dashboard.DefaultAcquirer)
	assert.Equal(t, 2*time.Minute, cfg.Dashboard.RefreshInterval)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadFromEnv_RequiresPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	_, err := LoadFromEnv()
	assert.ErrorContains(t, err, "DB_PASSWORD")
}

func TestLoadFromEnv_RejectsSubSecondRefresh(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("REFRESH_INTERVAL", "100ms")

	_, err := LoadFromEnv()
	assert.ErrorContains(t, err, "REFRESH_INTERVAL")
}

func TestLoadFromEnv_IgnoresUnparseableNumbers(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("REFRESH_INTERVAL", "eventually")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Dashboard.RefreshInterval)
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "pw",
		Database: "pix_dashboard", SSLMode: "require",
	}

	assert.Equal(t,
		"host=db port=5432 user=app password=pw dbname=pix_dashboard sslmode=require",
		cfg.ConnectionString())
}
