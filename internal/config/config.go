package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr          string
	Environment   string
	DatabaseURL   string
	JWTSecret     string
	FrontendDir   string
	PhotoDir      string
	ExportDir     string
	MaxBodyBytes  int64
	PhotoMaxBytes int64
	RunMigrations bool
}

func Load() Config {
	return Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		Environment:   getEnv("APP_ENV", "development"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		FrontendDir:   getEnv("FRONTEND_DIR", "frontend/dist"),
		PhotoDir:      getEnv("PHOTO_DIR", "storage/photos"),
		ExportDir:     getEnv("EXPORT_DIR", "storage/exports"),
		MaxBodyBytes:  int64(getEnvInt("MAX_BODY_BYTES", 4194304)),
		PhotoMaxBytes: int64(getEnvInt("PHOTO_MAX_BYTES", 2097152)),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.PhotoMaxBytes < 1024 {
		return fmt.Errorf("PHOTO_MAX_BYTES must be at least 1024")
	}
	if c.MaxBodyBytes < c.PhotoMaxBytes {
		return fmt.Errorf("MAX_BODY_BYTES must be at least PHOTO_MAX_BYTES")
	}
	return nil
}
