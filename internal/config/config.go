package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	// Path is the sqlite store file. It is created and seeded on first use.
	Path string
}

type SessionConfig struct {
	// Secret signs the session cookie. The fallback is for development only
	// and must be overridden in any real deployment.
	Secret     string
	TTL        time.Duration
	BcryptCost int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8080"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Path: getEnv("THEATRE_DB_PATH", "theatre.db"),
		},
		Session: SessionConfig{
			Secret:     getEnv("SECRET_KEY", "dev-secret"),
			TTL:        time.Duration(getEnvInt("SESSION_TTL_HOURS", 12)) * time.Hour,
			BcryptCost: getEnvInt("BCRYPT_COST", 10),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
