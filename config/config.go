package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	// Server
	ServerPort string
	ClientURL  string

	// Postgres
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Redis
	RedisAddr     string
	RedisPassword string

	// Auth
	JWTSecret       string
	DefaultPassword string

	// Session lifecycle
	SessionIdleTimeout   time.Duration
	SessionSweepInterval time.Duration
)

// LoadConfig reads the .env file if present and populates the package-level
// configuration from the environment
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	ClientURL = getEnv("CLIENT_URL", "http://localhost:5173")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "hangman")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "dev-secret-change-me")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")

	SessionIdleTimeout = getDurationEnv("SESSION_IDLE_TIMEOUT", 30*time.Minute)
	SessionSweepInterval = getDurationEnv("SESSION_SWEEP_INTERVAL", 5*time.Minute)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.WithField("key", key).Warnf("Invalid duration %q, using default %s", value, fallback)
		return fallback
	}
	return d
}
