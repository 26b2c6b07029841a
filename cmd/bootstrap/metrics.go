package bootstrap

import (
	"gym-reservation-engine/internal/handler"
	"gym-reservation-engine/internal/infra/metrics"
	"gym-reservation-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(new(shared.Recorder)),
			fx.As(new(handler.Observability)),
		),
	),
)
