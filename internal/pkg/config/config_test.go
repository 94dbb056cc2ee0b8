package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "spendly", cfg.App.Name)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/spendly.db", cfg.Database.Path)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*24*60, cfg.JWT.Expiration)
	assert.Equal(t, 6, cfg.OTP.Length)
	assert.Equal(t, 10*time.Minute, cfg.OTP.Expiry)
	assert.Equal(t, 3, cfg.OTP.MaxAttempts)
	assert.Equal(t, "#4F46E5", cfg.Budget.DefaultColor)
	assert.Equal(t, 50, cfg.Budget.HistoryLimit)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestInitConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("OTP_EXPIRY", "5m")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := InitConfig("")

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.OTP.Expiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestInitConfig_LoadsDotenvLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spendly.env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nBUDGET_HISTORY_LIMIT=20\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// registered so t.Setenv restores the variables godotenv sets
	t.Setenv("JWT_SECRET", "")
	t.Setenv("BUDGET_HISTORY_LIMIT", "")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("BUDGET_HISTORY_LIMIT")

	cfg := InitConfig(path)

	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, 20, cfg.Budget.HistoryLimit)
}

func TestValidate(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	t.Run("valid", func(t *testing.T) {
		cfg := InitConfig("")
		cfg.JWT.Secret = "secret"
		assert.NoError(t, Validate(cfg))
	})

	t.Run("collects every problem", func(t *testing.T) {
		cfg := InitConfig("")
		cfg.JWT.Secret = ""
		cfg.Database.Driver = "mysql"
		cfg.OTP.Length = 2

		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
		assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
		assert.Contains(t, err.Error(), "OTP_LENGTH")
	})

	t.Run("postgres needs host and database", func(t *testing.T) {
		cfg := InitConfig("")
		cfg.JWT.Secret = "secret"
		cfg.Database.Driver = "postgres"
		cfg.Database.Database = ""

		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_DATABASE")
	})
}
