package main

import (
	"context"
	"fmt"
	"time"

	"jobswipe/internal/config"
	"jobswipe/internal/database/migration"
	"jobswipe/internal/database/postgres"
	"jobswipe/internal/pkg/logger"
	"jobswipe/migrations"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded SQL migrations to postgres",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if cfg.App.Storage != config.StoragePostgres {
			return fmt.Errorf("migrate needs STORAGE_DRIVER=%s", config.StoragePostgres)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		db, err := postgres.Connect(ctx, cfg.Database, logger.Component(log, "postgres"))
		if err != nil {
			return err
		}
		defer db.Close()

		runner := migration.Runner{FS: migrations.FS, Logger: logger.Component(log, "migration")}
		return runner.Run(ctx, db.SQLDB())
	},
}
