package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ApiURL    string
	AccessKey string
	SecretKey string
	Region    string
	LogLevel  string

	// Concurrency bounds the number of buckets checked at once. 1 keeps the
	// audit strictly sequential.
	Concurrency int
	// SinglePage stops the bucket listing after the first page.
	SinglePage bool
	// MaxAttempts overrides the SDK retry attempts. 0 keeps the SDK default.
	MaxAttempts int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables only")
	}

	config := &Config{
		ApiURL:      getEnv("API_URL", ""),
		AccessKey:   getEnv("ACCESS_KEY", ""),
		SecretKey:   getEnv("SECRET_KEY", ""),
		Region:      getEnv("REGION", "us-east-1"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Concurrency: getEnvInt("AUDIT_CONCURRENCY", 1),
		SinglePage:  getEnvBool("SINGLE_PAGE", false),
		MaxAttempts: getEnvInt("MAX_ATTEMPTS", 0),
	}

	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	if config.MaxAttempts < 0 {
		config.MaxAttempts = 0
	}

	return config, nil
}

// HasStaticCredentials reports whether both halves of a static key pair are set.
func (c *Config) HasStaticCredentials() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return b
}
