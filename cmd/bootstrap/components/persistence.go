package components

import (
	"log/slog"

	"gym-reservation-engine/internal/infra/db"
	"gym-reservation-engine/internal/infra/readstore"
	"gym-reservation-engine/internal/infra/repository"
	"gym-reservation-engine/internal/infra/uow"
	"gym-reservation-engine/internal/pkg/config"
	"gym-reservation-engine/internal/usecase/queries"
	"gym-reservation-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewCourtReadStore,
			fx.As(new(queries.CourtViewRepo)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, uow.Options{
		MaxRetries:   cfg.Engine.TxMaxRetries,
		OrderColumns: repository.NewOrderColumns(cfg.Engine.OrderOptionalColumns),
	}, logger)
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
