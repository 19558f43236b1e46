package main

import (
	"context"
	"fmt"
	"time"

	"jobswipe/internal/config"
	"jobswipe/internal/database/postgres"
	"jobswipe/internal/database/seeder"
	"jobswipe/internal/pkg/logger"
	"jobswipe/internal/repository"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo vacancies and candidates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if cfg.App.Storage != config.StoragePostgres {
			return fmt.Errorf("seed needs STORAGE_DRIVER=%s; the memory driver seeds itself", config.StoragePostgres)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		db, err := postgres.Connect(ctx, cfg.Database, logger.Component(log, "postgres"))
		if err != nil {
			return err
		}
		defer db.Close()

		if err := seeder.CheckCatalogSchema(ctx, db); err != nil {
			return fmt.Errorf("run migrate first: %w", err)
		}

		runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger.Component(log, "seeder")}
		return runner.Run(ctx, seeder.Catalog{
			Vacancies:  repository.NewPostgresVacancyRepository(db),
			Candidates: repository.NewPostgresCandidateRepository(db),
		})
	},
}
