package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadEnv loads .env into the process environment. A missing file is fine,
// env vars can be set by other means.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetEnv returns the env var key, then a viper value, then defaultValue.
func GetEnv(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
