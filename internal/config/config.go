package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	Env      string
	LogLevel slog.Level
	Output   string
	// Seed is nil when suggestions should come from a fresh random stream.
	Seed *uint64
}

// Load reads the configuration from the environment. Invalid values fall back
// to their defaults and are reported in the returned warnings, so they can be
// logged once the configured logger exists.
func Load() (Config, []string) {
	var warnings []string

	cfg := Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: slog.LevelWarn,
		Output:   OutputText,
	}

	if v := getEnv("LOG_LEVEL", ""); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid LOG_LEVEL %q, using %s", v, cfg.LogLevel))
		} else {
			cfg.LogLevel = level
		}
	}

	switch v := strings.ToLower(getEnv("PASSCHECK_OUTPUT", OutputText)); v {
	case OutputText, OutputJSON:
		cfg.Output = v
	default:
		warnings = append(warnings, fmt.Sprintf("invalid PASSCHECK_OUTPUT %q, using %s", v, OutputText))
	}

	if v := getEnv("PASSCHECK_SEED", ""); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid PASSCHECK_SEED %q, using random suggestions", v))
		} else {
			cfg.Seed = &seed
		}
	}

	return cfg, warnings
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
