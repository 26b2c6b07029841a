package components

import (
	"log/slog"
	"time"

	"gym-reservation-engine/internal/domain/order"
	"gym-reservation-engine/internal/domain/pricing"
	"gym-reservation-engine/internal/pkg/cache"
	"gym-reservation-engine/internal/pkg/clock"
	"gym-reservation-engine/internal/pkg/config"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"
	"gym-reservation-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseEngineModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, clk clock.Clock) *cache.TTL[string, pricing.TierTable] {
		return cache.NewTTL[string, pricing.TierTable](cfg.Engine.DiscountCacheTTL, clk)
	},
	func(cfg config.Config, clk clock.Clock, loc *time.Location) *order.NumberGenerator {
		return order.NewNumberGenerator(cfg.Engine.OrderNoPrefix, clk, loc)
	},
)

// The five settlement components, each separately constructed.
var usecaseEngineModule = fx.Module("usecase/engine",
	fx.Provide(
		fx.Annotate(
			commands.NewCachedTierDiscounts,
			fx.As(new(commands.TierDiscounts)),
		),
		commands.NewAvailabilityChecker,
		commands.NewPriceResolver,
		commands.NewBalanceLedger,
		func(numbers *order.NumberGenerator, clk clock.Clock, cfg config.Config) *commands.OrderRecorder {
			return commands.NewOrderRecorder(numbers, clk, cfg.Engine.Currency)
		},
		func(a *commands.AvailabilityChecker, p *commands.PriceResolver, l *commands.BalanceLedger, o *commands.OrderRecorder) commands.Components {
			return commands.Components{Availability: a, Prices: p, Ledger: l, Orders: o}
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			uow shared.UnitOfWork,
			parts commands.Components,
			tiers commands.TierDiscounts,
			publisher shared.EventPublisher,
			recorder shared.Recorder,
			clk clock.Clock,
			cfg config.Config,
			logger *slog.Logger,
		) commands.ReservationCommands {
			return commands.NewReservationCommands(uow, parts, tiers, publisher, recorder, clk, cfg.Engine.DefaultPayMethod, logger)
		},
		commands.NewMemberCommands,
		commands.NewSettingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewCourtQueries,
		queries.NewLedgerQueries,
	),
)
