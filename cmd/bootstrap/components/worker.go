package components

import (
	"context"

	"meeting-room-reservation/internal/infra/metrics"
	"meeting-room-reservation/internal/pkg/clock"
	"meeting-room-reservation/internal/pkg/config"
	"meeting-room-reservation/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewNotificationRelay,
		NewIdempotencySweeper,
	),
	fx.Invoke(
		startNotificationRelay,
		startIdempotencySweeper,
	),
)

func NewNotificationRelay(jobs worker.JobStore, publisher worker.Publisher, m *metrics.Metrics, clk clock.Clock, cfg config.Config) *worker.NotificationRelay {
	return worker.NewNotificationRelay(jobs, publisher, m, clk, worker.RelayConfig{
		Interval:          cfg.Worker.RelayInterval,
		BatchSize:         cfg.Worker.RelayBatchSize,
		MaxAttempts:       cfg.Worker.RelayMaxAttempts,
		ProcessingTimeout: cfg.Worker.ProcessingTimeout,
	})
}

func NewIdempotencySweeper(keys worker.ExpiredKeyDeleter, clk clock.Clock, cfg config.Config) *worker.IdempotencySweeper {
	return worker.NewIdempotencySweeper(keys, clk, cfg.Worker.SweepInterval)
}

// The OnStart context expires once startup completes, so loops get their own.
func startNotificationRelay(lc fx.Lifecycle, relay *worker.NotificationRelay) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go relay.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			cancel()
			return nil
		},
	})
}

func startIdempotencySweeper(lc fx.Lifecycle, sweeper *worker.IdempotencySweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			cancel()
			return nil
		},
	})
}
