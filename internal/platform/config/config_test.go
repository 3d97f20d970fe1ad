package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dfs", cfg.ResolverStrategy)
	assert.Equal(t, 4096, cfg.ResultCacheSize)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "CAD", cfg.LoadTestFrom)
	assert.Equal(t, "EUR", cfg.LoadTestTo)
	assert.Equal(t, 100.0, cfg.LoadTestAmount)
	assert.True(t, cfg.ApplySeedOnStartup)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("RESOLVER_STRATEGY", "Shortest-Legacy")
	t.Setenv("RESULT_CACHE_SIZE", "16")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_EXPIRY_DURATION", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CONVERT_RATE_LIMIT", "10-M")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "shortest-legacy", cfg.ResolverStrategy)
	assert.Equal(t, 16, cfg.ResultCacheSize)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-M", cfg.ConvertRateLimit)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown strategy", key: "RESOLVER_STRATEGY", val: "bfs"},
		{name: "bad rate limit", key: "CONVERT_RATE_LIMIT", val: "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Setenv(tt.key, tt.val)

			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	viper.Reset()
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
