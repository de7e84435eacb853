package config

import (
	"os"
	"time"
)

// RequestTimeout bounds the one-time catalog fetch.
const RequestTimeout = 10 * time.Second

// GetEnv reads an environment variable with a fallback.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
