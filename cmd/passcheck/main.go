package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passcheck/internal/cli"
	"github.com/vaultpass/passcheck/internal/config"
)

func main() {
	envErr := godotenv.Load()

	cfg, warnings := config.Load()

	slog.SetDefault(newLogger(cfg, os.Stderr))

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		slog.Error("passcheck failed", "error", err)
		os.Exit(1)
	}
}

// newLogger writes text records at cfg.LogLevel, tagged with the environment.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(handler).With("env", cfg.Env)
}
