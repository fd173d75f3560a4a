package bootstrap

import (
	"context"

	"shareit/internal/infra/db"
	"shareit/internal/pkg/config"
	"shareit/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB applies pending migrations when enabled and then opens the pool.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx := context.Background()

	if cfg.Migrate.OnStart {
		if err := db.Migrate(ctx, cfg.DB.BuildDSN(), migrations.FS); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
