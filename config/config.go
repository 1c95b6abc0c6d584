package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	// DBDriver is "sqlite" (single file at DBPath) or "postgres".
	DBDriver string
	DBPath   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real env vars win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:  get("APP_PORT", "8080"),
		AppEnv:   get("APP_ENV", "dev"),
		LogLevel: get("LOG_LEVEL", "info"),

		DBDriver: get("DB_DRIVER", "sqlite"),
		DBPath:   get("DB_PATH", "site.db"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", ""),
		DBName:     get("DB_NAME", "tutordesk"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		JWTSecret: get("JWT_SECRET", "dev-secret"),
	}
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
