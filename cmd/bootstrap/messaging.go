package bootstrap

import (
	"context"
	"log/slog"

	"gym-reservation-engine/internal/infra/messaging"
	"gym-reservation-engine/internal/pkg/config"
	"gym-reservation-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher dials the broker when AMQP_URL is set and logs events otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.MQ.URL == "" {
		logger.Info("AMQP_URL not set, events are only logged")
		return messaging.NewLogPublisher(logger), nil
	}

	pub, err := messaging.NewAMQPPublisher(cfg.MQ.URL, cfg.MQ.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
