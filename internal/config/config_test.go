package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"PORT", "HOST", "LOG_LEVEL", "LOG_FORMAT", "STORAGE", "SEED_DEMO_DATA", "MIGRATE_ON_START", "FLASH_COOKIE",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://fyyur@localhost/fyyur")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "postgres://fyyur@localhost/fyyur", cfg.Database.URL)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "fyyur_flash", cfg.FlashCookie)
	assert.False(t, cfg.SeedDemoData)
	assert.False(t, cfg.MigrateOnStart)
}

func TestFromEnvBuildsURLFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "fyyur")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "fyyur")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "postgresql://fyyur:secret@db:5432/fyyur?sslmode=disable", cfg.Database.URL)
}

func TestFromEnvMemoryStorageNeedsNoDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "memory")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.True(t, cfg.SeedDemoData)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := FromEnv()
	require.Error(t, err)
	for _, want := range []string{"DATABASE_URL is required", "PORT must be", "LOG_LEVEL must be", "LOG_FORMAT must be"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestFromEnvRejectsBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "memory")
	t.Setenv("SEED_DEMO_DATA", "sometimes")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "invalid SEED_DEMO_DATA")
}
