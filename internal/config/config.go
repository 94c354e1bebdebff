package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the runtime configuration, loaded from the environment
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	Port          string
	Env           string
	LogLevel      string

	// AdminUsername and AdminPassword seed the first admin account at
	// startup when set
	AdminUsername string
	AdminPassword string
}

// NewConfigFromEnv builds a Config from environment variables
func NewConfigFromEnv() (*Config, error) {
	redisDB, _ := strconv.Atoi(getenv("REDIS_DB", "0"))

	cfg := &Config{
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		JWTSecret:     getenv("JWT_SECRET", ""),
		Port:          getenv("PORT", "3000"),
		Env:           getenv("ENV", "development"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		AdminUsername: getenv("ADMIN_USERNAME", ""),
		AdminPassword: getenv("ADMIN_PASSWORD", ""),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
