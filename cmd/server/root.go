package main

import (
	"fmt"

	"jobswipe/internal/config"
	"jobswipe/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "jobswipe"

var (
	debug bool

	rootCmd = &cobra.Command{
		Use:           appName,
		Short:         "jobswipe serves the swipe, match and chat API for candidates and employers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, tokenCmd)
}

// setup loads configuration and builds the process logger.
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.App.LogLevel
	if debug {
		level = "debug"
	}
	log, err := logger.New(level, cfg.App.LogJSON)
	if err != nil {
		return config.Config{}, nil, err
	}
	log = log.With(zap.String("app", cfg.App.AppName), zap.String("env", cfg.App.Environment))
	return cfg, log, nil
}
