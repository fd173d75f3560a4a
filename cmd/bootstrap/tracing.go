package bootstrap

import (
	"context"

	"shareit/internal/pkg/config"
	"shareit/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(StartTracing),
)

// StartTracing installs the global tracer provider and flushes it on stop.
func StartTracing(lc fx.Lifecycle, cfg config.Config) error {
	tp, err := tracing.NewProvider(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})
	return nil
}
