package reservation

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyCancelled  = errors.New("reservation is already cancelled")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidOrigin     = errors.New("invalid reservation origin")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
)

type Reservation struct {
	id          int64
	courtID     int64
	memberID    *int64
	timeSlot    TimeSlot
	totalAmount decimal.Decimal
	status      Status
	origin      Origin
	note        Note
	createdAt   time.Time
}

// NewReservation builds an unsaved booking; the id is assigned on insert.
func NewReservation(
	courtID int64,
	memberID *int64,
	slot TimeSlot,
	totalAmount decimal.Decimal,
	origin Origin,
	note Note,
	now time.Time,
) (*Reservation, error) {
	if err := slot.ValidateNotPastAt(now); err != nil {
		return nil, err
	}
	if !origin.IsValid() {
		return nil, ErrInvalidOrigin
	}
	if totalAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	return &Reservation{
		courtID:     courtID,
		memberID:    memberID,
		timeSlot:    slot,
		totalAmount: totalAmount,
		status:      StatusBooked,
		origin:      origin,
		note:        note,
		createdAt:   now,
	}, nil
}

func ReconstructReservation(
	id, courtID int64,
	memberID *int64,
	timeSlot TimeSlot,
	totalAmount decimal.Decimal,
	status Status,
	origin Origin,
	note Note,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		courtID:     courtID,
		memberID:    memberID,
		timeSlot:    timeSlot,
		totalAmount: totalAmount,
		status:      status,
		origin:      origin,
		note:        note,
		createdAt:   createdAt,
	}
}

func (r *Reservation) AssignID(id int64) {
	r.id = id
}

// EnsureCancellable reports why a cancel must be refused, if at all.
func (r *Reservation) EnsureCancellable() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !r.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	return nil
}

func (r *Reservation) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if next == StatusCancelled {
		if err := r.EnsureCancellable(); err != nil {
			return err
		}
	} else if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) IsOwnedBy(memberID int64) bool {
	return r.memberID != nil && *r.memberID == memberID
}

func (r *Reservation) IsActive() bool {
	return r.status != StatusCancelled
}

func (r *Reservation) ID() int64                    { return r.id }
func (r *Reservation) CourtID() int64               { return r.courtID }
func (r *Reservation) MemberID() *int64             { return r.memberID }
func (r *Reservation) TimeSlot() TimeSlot           { return r.timeSlot }
func (r *Reservation) TotalAmount() decimal.Decimal { return r.totalAmount }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) Origin() Origin               { return r.origin }
func (r *Reservation) Note() Note                   { return r.note }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
