package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "ow-test-key"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.OpenWeatherEnabled)
	assert.Empty(t, cfg.OpenWeatherAPIKey)
	assert.Equal(t, 5*time.Second, cfg.RainfallTimeout)
	assert.Equal(t, 256, cfg.RainfallCacheSize)
	assert.Equal(t, 10*time.Minute, cfg.RainfallCacheTTL)
	assert.Equal(t, 3, cfg.BreakerThreshold)
	assert.Equal(t, 30*time.Second, cfg.BreakerCooldown)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "rtrwh-assessments", cfg.KafkaTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("RAINFALL_TIMEOUT", "10s")
	t.Setenv("RAINFALL_CACHE_SIZE", "512")
	t.Setenv("RAINFALL_CACHE_TTL", "1h")
	t.Setenv("RAINFALL_BREAKER_THRESHOLD", "5")
	t.Setenv("RAINFALL_BREAKER_COOLDOWN", "1m")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-assessments")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.OpenWeatherEnabled)
	assert.Equal(t, testAPIKey, cfg.OpenWeatherAPIKey)
	assert.Equal(t, 10*time.Second, cfg.RainfallTimeout)
	assert.Equal(t, 512, cfg.RainfallCacheSize)
	assert.Equal(t, time.Hour, cfg.RainfallCacheTTL)
	assert.Equal(t, 5, cfg.BreakerThreshold)
	assert.Equal(t, time.Minute, cfg.BreakerCooldown)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-assessments", cfg.KafkaTopic)
}

func TestLoad_BrokersWithSpaces(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", " broker1:9092 , ,broker2:9092 ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidRainfallTimeout(t *testing.T) {
	t.Setenv("RAINFALL_TIMEOUT", "bad")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RAINFALL_TIMEOUT")
}

func TestLoad_InvalidCacheTTL(t *testing.T) {
	t.Setenv("RAINFALL_CACHE_TTL", "0s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RAINFALL_CACHE_TTL")
}

func TestLoad_InvalidCacheSizeFallsBack(t *testing.T) {
	t.Setenv("RAINFALL_CACHE_SIZE", "-10")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.RainfallCacheSize)
}

func TestLoad_InvalidBreakerThresholdFallsBack(t *testing.T) {
	t.Setenv("RAINFALL_BREAKER_THRESHOLD", "zero")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.BreakerThreshold)
}

func TestLoad_ProviderEnabledWithoutKey(t *testing.T) {
	t.Setenv("OPENWEATHER_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestLoad_APIKeyImpliesEnabled(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.OpenWeatherEnabled)
}

func TestLoad_ProviderExplicitlyDisabled(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("OPENWEATHER_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.OpenWeatherEnabled)
}
