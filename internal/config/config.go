// Package config loads runtime settings from the environment, with an
// optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunables every command shares.
type Config struct {
	Shots     int
	Seed      int64
	SeedSet   bool
	NoiseRate float64
	MaxQubits int
	LogLevel  string
	LogPretty bool
}

// Load reads .env when present, then the QCDEMO_* variables, falling back
// to defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Shots:     getEnvInt("QCDEMO_SHOTS", 1000),
		NoiseRate: getEnvFloat("QCDEMO_NOISE_RATE", 0),
		MaxQubits: getEnvInt("QCDEMO_MAX_QUBITS", 22),
		LogLevel:  getEnv("QCDEMO_LOG_LEVEL", "info"),
		LogPretty: getEnvBool("QCDEMO_LOG_PRETTY", true),
	}
	if raw := os.Getenv("QCDEMO_SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = seed
			cfg.SeedSet = true
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
