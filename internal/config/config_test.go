package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, StoreMemory, cfg.StoreBackend)
		assert.Equal(t, ProductIDMonotonic, cfg.ProductIDPolicy)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.Equal(t, DefaultPhotoRef, cfg.DefaultPhotoRef)
		assert.Empty(t, cfg.OperatorIDs)
	})

	t.Run("operator roster is trimmed", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPERATOR_IDS", " 42, ,alice ,")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, []string{"42", "alice"}, cfg.OperatorIDs)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "abc")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("defaults are valid", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("load does not validate", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_BACKEND", "redis")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "redis", cfg.StoreBackend)
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:            8080,
			StoreBackend:    StoreMemory,
			ProductIDPolicy: ProductIDMonotonic,
			SessionTTL:      time.Minute,
			SweepInterval:   time.Minute,
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "non-positive port", mutate: func(c *Config) { c.Port = 0 }},
		{name: "unknown store backend", mutate: func(c *Config) { c.StoreBackend = "redis" }},
		{name: "unknown id policy", mutate: func(c *Config) { c.ProductIDPolicy = "random" }},
		{name: "max plus one requires memory store", mutate: func(c *Config) {
			c.StoreBackend = StoreDynamoDB
			c.ProductIDPolicy = ProductIDMaxPlusOne
		}},
		{name: "non-positive session ttl", mutate: func(c *Config) { c.SessionTTL = 0 }},
		{name: "non-positive sweep interval", mutate: func(c *Config) { c.SweepInterval = 0 }},
		{name: "otel endpoint requires auth header", mutate: func(c *Config) { c.OtelEndpoint = "otlp.example.com" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STORE_BACKEND", "PRODUCT_ID_POLICY", "OPERATOR_IDS",
		"DEFAULT_PHOTO_REF", "WELCOME_PHOTO_REF", "SESSION_TTL", "SESSION_SWEEP_INTERVAL",
		"KAFKA_BROKER", "OTEL_ENDPOINT", "OTEL_AUTH_HEADER",
	} {
		t.Setenv(key, "")
	}
}
