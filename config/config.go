package config

import (
	"log"
	"os"
	"strconv"

	"github.com/ansoncht/Cat-Food-Helper/pkg/constant"
)

type Config struct {
	Env         string
	Port        string
	DBURL       string
	JWTSecret   string // base64-encoded HMAC signing key
	JWTExpiryMs int
	LogLevel    string
}

func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DBURL:       mustGetEnv("DB_URL"),
		JWTSecret:   mustGetEnv("JWT_SECRET"),
		JWTExpiryMs: getEnvAsInt("JWT_EXPIRY_MS", constant.DefaultTokenExpiryMs),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
