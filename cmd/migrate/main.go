package main

import (
	"context"
	"flag"
	"log/slog"

	"storefront/config"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

var drop = flag.Bool("drop", false, "Drop all tables before migration")

func main() {
	flag.Parse()

	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(
			registerMigration,
		),
	).Run()
}

func registerMigration(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			err := migrate(ctx, params.DB, params.Logger)
			if err != nil {
				params.Logger.Error("Migration failed", slog.Any("error", err))
			}

			return params.Shutdown(fx.ExitCode(exitCode(err)))
		},
	})
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if db == nil {
		return errors.New("postgres is not configured")
	}
	db = db.WithContext(ctx)
	models := model.All()

	if *drop {
		logger.Warn("Dropping all tables")
		// Reverse order so dependents go first.
		for i := len(models) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(models[i]); err != nil {
				return errors.Wrap(err, "failed to drop table")
			}
		}
	}

	logger.Info("Running AutoMigrate", slog.Int("models", len(models)))
	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to run AutoMigrate")
	}
	logger.Info("Migration completed")

	return nil
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}

	return 0
}
