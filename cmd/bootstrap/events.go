package bootstrap

import (
	"context"
	"log/slog"

	"car-rental-api/internal/infra/events"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher dials RabbitMQ. Booking events are best effort, so a dead
// broker only disables publishing.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	publisher, cleanup, err := events.NewAMQPPublisher(cfg.AMQP)
	if err != nil {
		slog.Warn("amqp broker unreachable, booking events disabled", "url", cfg.AMQP.URL, "error", err.Error())
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return publisher
}
