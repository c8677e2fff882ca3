package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	ServerPort   string
	BasePath     string
	StaticDir    string
	JWTSecret    string
	TokenTTL     time.Duration
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       int
	DBName       string
	RedisAddr    string
	RoleCacheTTL time.Duration
}

// Load reads configuration from environment variables. A missing SECRET_KEY
// is a fatal misconfiguration: the process must refuse to start.
func Load() (*Config, error) {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("SECRET_KEY is not set")
	}

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return &Config{
		ServerPort:   getEnv("PORT", "3000"),
		BasePath:     os.Getenv("BASE_PATH"),
		StaticDir:    getEnv("STATIC_DIR", "build/web"),
		JWTSecret:    secret,
		TokenTTL:     getEnvDuration("TOKEN_TTL", time.Hour),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       dbPort,
		DBName:       getEnv("DB_NAME", "campus"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RoleCacheTTL: getEnvDuration("ROLE_CACHE_TTL", 30*time.Second),
	}, nil
}

// DatabaseURL builds the postgres connection string from the discrete parts.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
