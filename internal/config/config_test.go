package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP_ADDR)
	assert.Equal(t, "info", cfg.LOG_LEVEL)
	assert.Empty(t, cfg.JWT_SECRET)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("KAFKA_ADDRESS", "localhost:9092")
	t.Setenv("GOOGLE_MAPS_API_KEY", "maps-key")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP_ADDR)
	assert.Equal(t, "supersecret", cfg.JWT_SECRET)
	assert.Equal(t, "localhost:9092", cfg.KAFKA_ADDRESS)
	assert.Equal(t, "maps-key", cfg.MAPS_API_KEY)
	assert.Equal(t, "warn", cfg.LOG_LEVEL)
}
