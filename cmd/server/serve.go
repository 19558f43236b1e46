package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobswipe/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and websocket API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		addr, err := app.ListenAddr(cfg.App.HTTPPort)
		if err != nil {
			return err
		}

		bootstrap, cleanup, err := app.Bootstrap(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := cleanup(); err != nil {
				log.Warn("cleanup error", zap.Error(err))
			}
		}()

		errCh := make(chan error, 1)
		go func() {
			log.Info("http server listening", zap.String("addr", addr), zap.String("storage", cfg.App.Storage))
			errCh <- bootstrap.Fiber.Listen(addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			log.Info("shutting down", zap.String("signal", sig.String()))
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
				log.Warn("shutdown error", zap.Error(err))
			}
		}
		return nil
	},
}
