package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds all application configuration.
type Config struct {
	Database        DatabaseConfig
	Redis           RedisConfig
	AppPort         string
	JWTSecret       []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CacheTTL        time.Duration
}

// DatabaseConfig holds database specific configuration.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds cache specific configuration.
type RedisConfig struct {
	Addr     string
	Password string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8080" // Default port
		logrus.Warnf("APP_PORT not set, defaulting to %s", appPort)
	}

	jwtSecretStr := os.Getenv("JWT_SECRET")
	if jwtSecretStr == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST environment variable not set")
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		return nil, fmt.Errorf("DB_PORT environment variable not set")
	}
	dbUser := os.Getenv("POSTGRES_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("POSTGRES_USER environment variable not set")
	}
	dbPassword := os.Getenv("POSTGRES_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD environment variable not set")
	}
	dbName := os.Getenv("POSTGRES_DB")
	if dbName == "" {
		return nil, fmt.Errorf("POSTGRES_DB environment variable not set")
	}
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable" // Default to disable for local development
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
		logrus.Warnf("REDIS_ADDR not set, defaulting to %s", redisAddr)
	}

	return &Config{
		AppPort:         appPort,
		JWTSecret:       []byte(jwtSecretStr),
		AccessTokenTTL:  durationFromEnv("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: durationFromEnv("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		CacheTTL:        durationFromEnv("CACHE_TTL", 10*time.Minute),
		Database: DatabaseConfig{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		Redis: RedisConfig{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}, nil
}

// durationFromEnv parses a Go duration string from the environment,
// falling back to the given default when unset or invalid.
func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		logrus.Warnf("Invalid %s value '%s', defaulting to %s", key, raw, fallback)
		return fallback
	}
	return d
}
