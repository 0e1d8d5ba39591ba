// Package main is the entry point for the label sphere viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/labelsphere/internal/app"
	"github.com/Faultbox/labelsphere/internal/config"
	"github.com/Faultbox/labelsphere/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.LayoutOnly() {
		os.Exit(printLayout(cfg))
	}

	logger.Info("=== Label Sphere ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("main loop error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}

// printLayout writes the sampled labels to stdout without opening a window.
func printLayout(cfg *config.Config) int {
	// Keep stdout clean for the YAML document
	logger.SetLevel("error")

	app.ResolveSeed(cfg)

	g, err := app.NewGlobe(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Layout error: %v\n", err)
		return 1
	}
	if err := app.WriteLayout(os.Stdout, g, cfg.Scene.Seed); err != nil {
		fmt.Fprintf(os.Stderr, "Layout error: %v\n", err)
		return 1
	}
	return 0
}
