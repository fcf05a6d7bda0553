// Package config reads the small set of operational knobs the process
// takes from its environment rather than from the input document: log
// level, an optional cap on reconstructed itinerary legs, and an optional
// .env file path. None of it is required; the process runs with sane
// defaults when nothing is set, the way the teacher's cmd/api reads
// REDIS_HOST/API_PORT with fallbacks rather than failing closed.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the environment-derived knobs for one process run.
type Config struct {
	LogLevel      string
	RouteMaxItems int
}

// Load reads CATALOGUE_ENV_FILE (if set) into the process environment via
// godotenv, then resolves the rest of the knobs from os.Getenv. A missing
// or unreadable env file is not an error: it is optional local-run sugar,
// never a requirement for a correct run.
func Load() Config {
	if path := os.Getenv("CATALOGUE_ENV_FILE"); path != "" {
		_ = godotenv.Load(path)
	}

	return Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RouteMaxItems: getEnvInt("ROUTE_MAX_ITEMS", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
