package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Redis      RedisConfig
	Game       GameConfig
	Moderation ModerationConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GameConfig holds game session configuration
type GameConfig struct {
	// SessionTTL is how long a game session is retained in Redis
	SessionTTL time.Duration
	// StaleThreshold is how long a session may sit idle before cleanup
	StaleThreshold time.Duration
}

// ModerationConfig holds content screening configuration
type ModerationConfig struct {
	// Denylist terms are matched case-insensitively against
	// question text and deck names
	Denylist []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Game: GameConfig{
			SessionTTL:     getEnvAsDurationOrDefault("GAME_SESSION_TTL", 48*time.Hour),
			StaleThreshold: getEnvAsDurationOrDefault("GAME_STALE_THRESHOLD", 30*time.Minute),
		},
		Moderation: ModerationConfig{
			Denylist: getEnvAsListOrDefault("CONTENT_DENYLIST", nil),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
