package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_AUTOMIGRATE", "")

	cfg := LoadConfig()

	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DB.DbHOST)
	assert.Equal(t, "plain", cfg.Auth.PasswordScheme)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 0, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSize)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_NAME", "kur")
	t.Setenv("DB_AUTOMIGRATE", "false")
	t.Setenv("PASSWORD_SCHEME", "bcrypt")
	t.Setenv("TOKEN_DURATION", "2h")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("MAX_UPLOAD_SIZE", "oops")

	cfg := LoadConfig()

	assert.Equal(t, 8081, cfg.ServerPort)
	assert.Equal(t, "kur", cfg.DB.DbNAME)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordScheme)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSize)
}

func TestParseDuration_Fallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("7d", time.Minute))
	assert.Equal(t, 3*time.Second, parseDuration("3s", time.Minute))
}
