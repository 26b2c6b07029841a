package bootstrap

import (
	"time"

	"gym-reservation-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the gym's wall clock zone.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Engine.Location()
}
