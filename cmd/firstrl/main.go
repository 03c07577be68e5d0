// Package main is the entry point for firstrl.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/firstrl/internal/game"
	"github.com/samdwyer/firstrl/internal/logger"
	"github.com/samdwyer/firstrl/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "firstrl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development
	envErr := godotenv.Load()

	cfg := game.DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("bad environment: %w", err)
	}
	parseFlags(&cfg, os.Args[1:])

	closeLog, err := logger.Init(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Log.WithError(envErr).Debug(".env file not loaded.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry.MapHoneycombEnv()
	if telemetry.Enabled(cfg.Telemetry) {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Game still works without observability
			logger.Log.WithError(err).Warn("Telemetry setup failed.")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Log.WithError(err).Error("Error shutting down telemetry.")
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	logger.Log.WithField("seed", g.Seed()).Info("Starting game.")
	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Error("Game error.")
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// parseFlags overrides cfg from command-line flags. Flags win over the environment.
func parseFlags(cfg *game.Config, args []string) {
	fs := flag.NewFlagSet("firstrl", flag.ExitOnError)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "dungeon seed (0 picks one from the clock)")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frame rate limit")
	fs.IntVar(&cfg.MaxRooms, "rooms", cfg.MaxRooms, "room placement attempts")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path")
	fs.BoolVar(&cfg.Telemetry, "telemetry", cfg.Telemetry, "export traces over OTLP")
	_ = fs.Parse(args)
}
