package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db.example:5432/cane")
	t.Setenv("LOCAL_STORE_PATH", "/var/lib/canetrack/harvests.json")
	t.Setenv("REPORT_DIR", "/var/lib/canetrack/reports")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "postgres://u:p@db.example:5432/cane", cfg.DatabaseURL)
	assert.Equal(t, "/var/lib/canetrack/harvests.json", cfg.LocalStorePath)
	assert.Equal(t, "/var/lib/canetrack/reports", cfg.ReportDir)
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.LocalStorePath)
	assert.NotEmpty(t, cfg.ReportDir)
	assert.NotEmpty(t, cfg.DatabaseURL)
}
