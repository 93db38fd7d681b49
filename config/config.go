package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port        string
	Environment string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	RedisHost     string
	RedisPort     int
	RedisPassword string

	ProcessorURL string
	PollInterval time.Duration

	FrontendURLs string
}

// Load reads the configuration from the environment, after loading a local
// .env file when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		// Server settings
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENV", "development"),

		// Database settings
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "karaoke"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Redis settings
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnvAsInt("REDIS_PORT", 6379),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		// Karaoke processor settings
		ProcessorURL: getEnv("PROCESSOR_URL", "http://localhost:8000"),
		PollInterval: time.Duration(getEnvAsInt("POLL_INTERVAL_SECONDS", 2)) * time.Second,

		// Comma-separated list of allowed frontend origins
		FrontendURLs: getEnv("FRONTEND_URLS", "http://localhost:3000"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=" + c.DBSSLMode
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
