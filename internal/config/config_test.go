package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "dashboard")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "edustore")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("API_BASE_URL", "https://api.edustore.test/")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SERVER_PORT", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		t.Setenv("API_TIMEOUT", "")
		t.Setenv("MAX_VIDEO_SIZE_MB", "")
		t.Setenv("SECURE_COOKIE", "")
		t.Setenv("SERVER_READ_TIMEOUT", "")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.False(t, cfg.Server.SecureCookie)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, "https://api.edustore.test", cfg.Platform.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Platform.Timeout)
		assert.Equal(t, 2*time.Minute, cfg.Server.ReadTimeout)
		assert.Equal(t, 2*time.Minute+75*time.Second, cfg.Server.WriteTimeout)
		assert.Greater(t, cfg.Server.WriteTimeout, cfg.Server.ReadTimeout+2*cfg.Platform.Timeout)
		assert.Equal(t, int64(100<<20), cfg.Upload.MaxVideoBytes)
		assert.Equal(t, int64(110<<20), cfg.Upload.MaxRequestBytes)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("SECURE_COOKIE", "true")
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.test, ,https://b.test ")
		t.Setenv("API_TIMEOUT", "5s")
		t.Setenv("MAX_VIDEO_SIZE_MB", "20")
		t.Setenv("SERVER_READ_TIMEOUT", "45s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.True(t, cfg.Server.SecureCookie)
		assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, 5*time.Second, cfg.Platform.Timeout)
		assert.Equal(t, int64(20<<20), cfg.Upload.MaxVideoBytes)
		assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 70*time.Second, cfg.Server.WriteTimeout)
	})

	tests := []struct {
		name          string
		key           string
		value         string
		expectedError string
	}{
		{name: "missing db host", key: "DB_HOST", value: "", expectedError: "DB_HOST is required"},
		{name: "bad db port", key: "DB_PORT", value: "abc", expectedError: "invalid DB_PORT"},
		{name: "missing jwt secret", key: "JWT_SECRET", value: "", expectedError: "JWT_SECRET is required"},
		{name: "missing api base url", key: "API_BASE_URL", value: "", expectedError: "API_BASE_URL is required"},
		{name: "bad api timeout", key: "API_TIMEOUT", value: "soon", expectedError: "invalid API_TIMEOUT"},
		{name: "bad read timeout", key: "SERVER_READ_TIMEOUT", value: "later", expectedError: "invalid SERVER_READ_TIMEOUT"},
		{name: "negative read timeout", key: "SERVER_READ_TIMEOUT", value: "-1s", expectedError: "SERVER_READ_TIMEOUT must be positive"},
		{name: "bad server port", key: "SERVER_PORT", value: "x", expectedError: "invalid SERVER_PORT"},
		{name: "bad secure cookie", key: "SECURE_COOKIE", value: "maybe", expectedError: "invalid SECURE_COOKIE"},
		{name: "zero video size", key: "MAX_VIDEO_SIZE_MB", value: "0", expectedError: "MAX_VIDEO_SIZE_MB must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db",
		Port:     3307,
		User:     "root",
		Password: "pw",
		DBName:   "edustore",
	}}

	assert.Equal(t, "root:pw@tcp(db:3307)/edustore?parseTime=true&charset=utf8mb4&clientFoundRows=true", cfg.DSN())
}
