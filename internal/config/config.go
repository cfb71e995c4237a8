package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ServiceName    = "wondershop"
	ServiceVersion = "0.1.0"
)

const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"

	ProductIDMonotonic  = "monotonic"
	ProductIDMaxPlusOne = "max_plus_one"
)

const (
	OrdersTopic  = "OrderPlaced"
	BatchTimeout = 10 * time.Millisecond
	BatchSize    = 100
)

const (
	LogsPath      = "/otlp/v1/logs"
	TracesPath    = "/otlp/v1/traces"
	ExportTimeout = 30 * time.Second
	MaxQueueSize  = 2048
)

const (
	DefaultPhotoRef   = "https://example.com/default.jpg"
	DefaultWelcomeRef = "https://pngimg.com/image/84642"
)

// Config holds environment-specific configuration.
//
// KafkaBroker and OtelEndpoint are optional: when empty the order publisher
// and the OTLP exporters are not started.
type Config struct {
	Port            int
	StoreBackend    string
	ProductIDPolicy string
	OperatorIDs     []string
	DefaultPhotoRef string
	WelcomePhotoRef string
	SessionTTL      time.Duration
	SweepInterval   time.Duration
	KafkaBroker     string
	OtelEndpoint    string
	OtelAuthHeader  string
}

// LoadConfig loads configuration from environment variables with sensible
// defaults. It only parses; call Validate once every override is applied.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		StoreBackend:    getEnvOrDefault("STORE_BACKEND", StoreMemory),
		ProductIDPolicy: getEnvOrDefault("PRODUCT_ID_POLICY", ProductIDMonotonic),
		OperatorIDs:     splitList(os.Getenv("OPERATOR_IDS")),
		DefaultPhotoRef: getEnvOrDefault("DEFAULT_PHOTO_REF", DefaultPhotoRef),
		WelcomePhotoRef: getEnvOrDefault("WELCOME_PHOTO_REF", DefaultWelcomeRef),
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		OtelEndpoint:    os.Getenv("OTEL_ENDPOINT"),
		OtelAuthHeader:  os.Getenv("OTEL_AUTH_HEADER"),
	}

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("PORT must be an integer: %w", err)
	}
	cfg.Port = port

	if cfg.SessionTTL, err = time.ParseDuration(getEnvOrDefault("SESSION_TTL", "30m")); err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if cfg.SweepInterval, err = time.ParseDuration(getEnvOrDefault("SESSION_SWEEP_INTERVAL", "1m")); err != nil {
		return nil, fmt.Errorf("SESSION_SWEEP_INTERVAL: %w", err)
	}
	return cfg, nil
}

// Validate checks values that can also be overridden by command-line flags.
func (c *Config) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("PORT must be positive, got %d", c.Port)
	}

	switch c.StoreBackend {
	case StoreMemory, StoreDynamoDB:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreMemory, StoreDynamoDB, c.StoreBackend)
	}

	switch c.ProductIDPolicy {
	case ProductIDMonotonic:
	case ProductIDMaxPlusOne:
		if c.StoreBackend != StoreMemory {
			return fmt.Errorf("PRODUCT_ID_POLICY %q is only supported by the memory store", c.ProductIDPolicy)
		}
	default:
		return fmt.Errorf("PRODUCT_ID_POLICY must be %q or %q, got %q", ProductIDMonotonic, ProductIDMaxPlusOne, c.ProductIDPolicy)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.OtelEndpoint != "" && c.OtelAuthHeader == "" {
		return fmt.Errorf("OTEL_AUTH_HEADER is required when OTEL_ENDPOINT is set")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
