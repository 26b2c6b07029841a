package shared

import (
	"context"

	"gym-reservation-engine/internal/domain/card"
	"gym-reservation-engine/internal/domain/court"
	"gym-reservation-engine/internal/domain/ledger"
	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/domain/order"
	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type UnitOfWork interface {
	// Within: READ COMMITTED write transaction; retried only when configured
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for consistent multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one open transaction.
type Tx interface {
	Courts() CourtRepository
	Reservations() ReservationRepository
	Members() MemberRepository
	Ledger() LedgerRepository
	Cards() CardRepository
	Orders() OrderRepository
	Settings() SettingsRepository
	// Savepoint runs fn in a nested transaction. A failing fn rolls back to
	// the savepoint and leaves the outer transaction usable.
	Savepoint(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type CourtRepository interface {
	FindByID(ctx context.Context, id int64) (*court.Court, error)
	// FindByIDForUpdate locks the court row; bookings of one court serialise on it.
	FindByIDForUpdate(ctx context.Context, id int64) (*court.Court, error)
}

type ReservationRepository interface {
	CountOverlapping(ctx context.Context, courtID int64, slot reservation.TimeSlot) (int, error)
	Create(ctx context.Context, r *reservation.Reservation) (int64, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status reservation.Status) error
}

type MemberRepository interface {
	FindByID(ctx context.Context, id int64) (*member.Member, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*member.Member, error)
	UpdateBalance(ctx context.Context, m *member.Member) error
}

type LedgerRepository interface {
	Append(ctx context.Context, e *ledger.Entry) (int64, error)
}

type CardRepository interface {
	ListByMember(ctx context.Context, memberID int64) ([]*card.MembershipCard, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (int64, error)
	FindLatestPaidForUpdate(ctx context.Context, t order.Type, relatedID int64) (*order.Order, error)
	UpdateStatus(ctx context.Context, id int64, status order.Status) error
}

type SettingsRepository interface {
	Get(ctx context.Context, group, key string) (string, error)
	Upsert(ctx context.Context, group, key, value string) error
}
