package shared

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SettingsGroupMember    = "member"
	SettingsKeyMemberLevel = "member_levels_json"
)

type EventKind string

const (
	EventReservationBooked    EventKind = "reservation.booked"
	EventReservationCancelled EventKind = "reservation.cancelled"
	EventMemberToppedUp       EventKind = "member.topped_up"
)

// Event is published after commit; delivery failures never undo the transaction.
type Event struct {
	Kind          EventKind        `json:"kind"`
	ReservationID int64            `json:"reservation_id,omitempty"`
	MemberID      *int64           `json:"member_id,omitempty"`
	CourtID       int64            `json:"court_id,omitempty"`
	OrderNo       string           `json:"order_no,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	BalanceAfter  *decimal.Decimal `json:"balance_after,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Recorder receives engine outcomes for metrics.
type Recorder interface {
	BookingAttempt(origin, outcome string)
	CancelAttempt(outcome string)
	DiscountDegraded(stage string)
	ChargedAmount(amount decimal.Decimal)
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

type NopRecorder struct{}

func (NopRecorder) BookingAttempt(string, string) {}
func (NopRecorder) CancelAttempt(string)          {}
func (NopRecorder) DiscountDegraded(string)       {}
func (NopRecorder) ChargedAmount(decimal.Decimal) {}
