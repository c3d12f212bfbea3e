package postgres

import (
	"context"
	"log/slog"

	"cellcontrol/config"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// MigrateParams defines the dependencies of the schema migration hook.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger
}

// Migrate creates or updates every table of the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// RegisterMigration runs Migrate on start when autoMigrate is enabled.
// It is appended after the connection hook, so the database has already been pinged.
func RegisterMigration(params MigrateParams) {
	if !params.Config.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.InfoContext(ctx, "Database schema migrated")

			return nil
		},
	})
}
