package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	Port            string
	Environment     string // "development" or "production"
	StorageDriver   string // "postgres" or "memory"
	DatabaseURL     string
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

func Load() *Config {
	return &Config{
		Port:            getenv("PORT", "5000"),
		Environment:     getenv("APP_ENV", "development"),
		StorageDriver:   getenv("STORAGE_DRIVER", DriverPostgres),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AllowedOrigins:  splitCSV(getenv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		RateLimitMax:    getint("RATE_LIMIT_MAX", 100),
		RateLimitWindow: time.Duration(getint("RATE_LIMIT_WINDOW_SECONDS", 900)) * time.Second,
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
