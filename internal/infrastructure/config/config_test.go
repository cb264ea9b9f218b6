package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "./app.db", cfg.Database.Path)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
}

func TestLoadFrom_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DB_DRIVER=postgres\nDB_NAME=accounts\nDB_USER=app\nDB_PASS=pw\nPORT=9090\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Cleanup(func() {
		for _, k := range []string{"DB_DRIVER", "DB_NAME", "DB_USER", "DB_PASS", "PORT"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := LoadFrom(envFile)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "host=localhost port=5432 user=app password=pw dbname=accounts sslmode=disable", cfg.Database.DSN())
}

func TestLoadFrom_EnvironmentWins(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadFrom(envFile)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFrom_InvalidDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN_SQLite(t *testing.T) {
	cfg := DatabaseConfig{Driver: DriverSQLite, Path: "/tmp/app.db"}
	assert.Equal(t, "/tmp/app.db?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate", cfg.DSN())
}
