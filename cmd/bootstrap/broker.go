package bootstrap

import (
	"context"
	"log/slog"

	"meeting-room-reservation/internal/infra/messaging"
	"meeting-room-reservation/internal/pkg/config"
	"meeting-room-reservation/internal/worker"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher falls back to logging events when the broker is disabled.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (worker.Publisher, error) {
	if !cfg.Broker.Enabled {
		logger.Warn("AMQP broker disabled, reservation events will only be logged")
		return messaging.NewLogPublisher(logger), nil
	}

	publisher := messaging.NewAMQPPublisher(cfg.Broker)
	if err := publisher.Connect(); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
