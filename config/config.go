package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultGatewayURL = "https://ai.gateway.lovable.dev/v1/chat/completions"
	DefaultModel      = "google/gemini-2.5-flash"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost string
	ServerPort string

	// Recipe store configuration. DatabaseURL is a credential and may be empty;
	// the store reports that at request time.
	DBDriver    string
	DatabaseURL string

	// Chat-completion gateway configuration
	Gateway GatewayConfig

	// Optional generation rate limiting, enabled when both are set
	RedisURL            string
	GenerationRateLimit int

	// Optional S3 bucket for recipe images
	S3Bucket  string
	AWSRegion string

	LogLevel string
}

// GatewayConfig configures the outbound chat-completion client.
type GatewayConfig struct {
	APIKey string
	URL    string
	Model  string
	// Timeout of zero leaves the transport defaults in place.
	Timeout time.Duration
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config instance with values from an optional .env
// file, environment variables and Docker secrets.
func LoadConfig() (*Config, error) {
	// .env is optional; a real environment always wins because godotenv never
	// overrides variables that are already set.
	_ = godotenv.Load(envFile())

	env := GetEnvironment()
	cfg := &Config{
		Environment: env,
		ServerHost:  getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL: lookupSecret(env, "DATABASE_URL", "database_url"),
		Gateway: GatewayConfig{
			APIKey: lookupSecret(env, "LOVABLE_API_KEY", "lovable_api_key"),
			URL:    getEnv("AI_GATEWAY_URL", DefaultGatewayURL),
			Model:  getEnv("AI_MODEL", DefaultModel),
		},
		RedisURL:  lookupSecret(env, "REDIS_URL", "redis_url"),
		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
		AWSRegion: os.Getenv("AWS_REGION"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.Gateway.Timeout, err = parseDuration("AI_GATEWAY_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.GenerationRateLimit, err = parseInt("GENERATION_RATE_LIMIT"); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func envFile() string {
	if f := os.Getenv("ENV_FILE"); f != "" {
		return f
	}
	return ".env"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// lookupSecret reads a credential from the environment first and falls back to
// a Docker secret outside CI, where secrets only come from the environment.
func lookupSecret(env Environment, key, secret string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if env == CI {
		return ""
	}
	return readSecret(secret)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func parseDuration(key string) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("invalid duration %q", raw)}
	}
	return d, nil
}

func parseInt(key string) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("invalid integer %q", raw)}
	}
	return n, nil
}
