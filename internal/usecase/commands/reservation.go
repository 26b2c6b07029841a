package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gym-reservation-engine/internal/domain/court"
	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/domain/order"
	"gym-reservation-engine/internal/domain/pricing"
	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/pkg/clock"
	"gym-reservation-engine/internal/pkg/errs"
	"gym-reservation-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CreateReservationInput struct {
	CourtID   int64
	MemberID  *int64
	Start     time.Time
	End       time.Time
	Origin    reservation.Origin
	Note      string
	PayMethod string
}

type BookingResult struct {
	ReservationID int64
	OrderID       int64
	OrderNo       string
	CourtName     string
	TimeRange     string
	Start         time.Time
	End           time.Time
	TotalAmount   decimal.Decimal
	Quote         pricing.Quote
	BalanceAfter  *decimal.Decimal
}

type CancelReservationInput struct {
	ReservationID int64
	Reason        string
	// ActorMemberID restricts the cancel to the reservation's owner when set.
	ActorMemberID *int64
}

type RefundResult struct {
	ReservationID int64
	RefundOrderID int64
	RefundOrderNo string
	RefundAmount  decimal.Decimal
	BalanceAfter  *decimal.Decimal
}

type QuoteInput struct {
	CourtID  int64
	MemberID *int64
	Start    time.Time
	End      time.Time
}

type QuoteResult struct {
	CourtID   int64
	CourtName string
	Start     time.Time
	End       time.Time
	Quote     pricing.Quote
}

type StatusChangeResult struct {
	ReservationID int64
	Status        reservation.Status
	Refund        *RefundResult
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*BookingResult, error)
	Cancel(ctx context.Context, in CancelReservationInput) (*RefundResult, error)
	AdvanceStatus(ctx context.Context, reservationID int64, status reservation.Status) (*StatusChangeResult, error)
	Quote(ctx context.Context, in QuoteInput) (*QuoteResult, error)
}

type Components struct {
	Availability *AvailabilityChecker
	Prices       *PriceResolver
	Ledger       *BalanceLedger
	Orders       *OrderRecorder
}

type reservationCommandsImpl struct {
	uow              shared.UnitOfWork
	components       Components
	tiers            TierDiscounts
	publisher        shared.EventPublisher
	recorder         shared.Recorder
	clock            clock.Clock
	defaultPayMethod string
	logger           *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	components Components,
	tiers TierDiscounts,
	publisher shared.EventPublisher,
	recorder shared.Recorder,
	clk clock.Clock,
	defaultPayMethod string,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:              uow,
		components:       components,
		tiers:            tiers,
		publisher:        publisher,
		recorder:         recorder,
		clock:            clk,
		defaultPayMethod: defaultPayMethod,
		logger:           logger,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (result *BookingResult, err error) {
	defer func() { r.recorder.BookingAttempt(in.Origin.String(), outcome(err)) }()

	slot, err := reservation.NewTimeSlot(in.Start, in.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := slot.ValidateNotPastAt(r.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if !in.Origin.IsValid() {
		return nil, errs.Mark(reservation.ErrInvalidOrigin, errs.ErrValidation)
	}
	payMethod := in.PayMethod
	if payMethod == "" {
		payMethod = r.defaultPayMethod
	}

	tier := r.tierSnapshot(ctx, in.MemberID)

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := r.book(ctx, tx, in, slot, payMethod, tier)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.recorder.ChargedAmount(result.TotalAmount)
	r.logger.InfoContext(ctx, "reservation booked",
		slog.Int64("reservation_id", result.ReservationID),
		slog.Int64("court_id", in.CourtID),
		slog.String("origin", in.Origin.String()),
		slog.String("order_no", result.OrderNo),
		slog.String("amount", result.TotalAmount.StringFixed(2)))
	r.publish(ctx, shared.Event{
		Kind:          shared.EventReservationBooked,
		ReservationID: result.ReservationID,
		MemberID:      in.MemberID,
		CourtID:       in.CourtID,
		OrderNo:       result.OrderNo,
		Amount:        result.TotalAmount,
		BalanceAfter:  result.BalanceAfter,
		OccurredAt:    r.clock.Now(),
	})
	return result, nil
}

// book runs steps court lock -> conflict check -> price -> charge -> insert -> order.
func (r *reservationCommandsImpl) book(
	ctx context.Context,
	tx shared.Tx,
	in CreateReservationInput,
	slot reservation.TimeSlot,
	payMethod string,
	tier TierSnapshot,
) (*BookingResult, error) {
	c, err := tx.Courts().FindByIDForUpdate(ctx, in.CourtID)
	if err != nil {
		return nil, markRepoErr(err, errs.ErrNotFound)
	}
	if err := c.EnsureBookable(); err != nil {
		return nil, errs.Mark(err, errs.ErrUnavailable)
	}

	conflict, err := r.components.Availability.HasConflict(ctx, tx, c.ID(), slot)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, errs.Mark(errs.Newf("court %d is booked within %s", c.ID(), slot), errs.ErrConflict)
	}

	var m *member.Member
	if in.MemberID != nil {
		m, err = tx.Members().FindByID(ctx, *in.MemberID)
		if err != nil {
			return nil, markRepoErr(err, errs.ErrNotFound)
		}
		// checked here too: a booking priced at 0.00 never reaches Charge
		if err := m.EnsureActive(); err != nil {
			return nil, errs.Mark(err, errs.ErrUnavailable)
		}
	}

	q, err := r.components.Prices.Quote(ctx, tx, c, slot, m, tier)
	if err != nil {
		return nil, err
	}

	var balanceAfter *decimal.Decimal
	if m != nil && q.Amount.IsPositive() {
		bal, err := r.components.Ledger.Charge(ctx, tx, m.ID(), q.Amount, bookingReason(c, slot))
		if err != nil {
			return nil, err
		}
		balanceAfter = &bal
	}

	res, err := reservation.NewReservation(c.ID(), in.MemberID, slot, q.Amount, in.Origin, reservation.NewNote(in.Note), r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	id, err := tx.Reservations().Create(ctx, res)
	if err != nil {
		return nil, markRepoErr(err, nil)
	}
	res.AssignID(id)

	o, err := r.components.Orders.RecordPaidOrder(ctx, tx, res, m, q, payMethod)
	if err != nil {
		return nil, err
	}

	return &BookingResult{
		ReservationID: id,
		OrderID:       o.ID(),
		OrderNo:       o.OrderNo(),
		CourtName:     c.Name(),
		TimeRange:     slot.String(),
		Start:         slot.Start(),
		End:           slot.End(),
		TotalAmount:   q.Amount,
		Quote:         q,
		BalanceAfter:  balanceAfter,
	}, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, in CancelReservationInput) (result *RefundResult, err error) {
	defer func() { r.recorder.CancelAttempt(outcome(err)) }()

	var memberID *int64
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, mid, err := r.cancel(ctx, tx, in)
		if err != nil {
			return err
		}
		result, memberID = res, mid
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "reservation cancelled",
		slog.Int64("reservation_id", result.ReservationID),
		slog.String("refund_order_no", result.RefundOrderNo),
		slog.String("refund_amount", result.RefundAmount.StringFixed(2)))
	r.publish(ctx, shared.Event{
		Kind:          shared.EventReservationCancelled,
		ReservationID: result.ReservationID,
		MemberID:      memberID,
		OrderNo:       result.RefundOrderNo,
		Amount:        result.RefundAmount,
		BalanceAfter:  result.BalanceAfter,
		OccurredAt:    r.clock.Now(),
	})
	return result, nil
}

// cancel runs steps reservation lock -> order lock -> refund order -> credit -> status.
func (r *reservationCommandsImpl) cancel(ctx context.Context, tx shared.Tx, in CancelReservationInput) (*RefundResult, *int64, error) {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, in.ReservationID)
	if err != nil {
		return nil, nil, markRepoErr(err, errs.ErrNotFound)
	}
	if in.ActorMemberID != nil && !res.IsOwnedBy(*in.ActorMemberID) {
		return nil, nil, errs.Mark(errs.Newf("reservation %d not found for member", in.ReservationID), errs.ErrNotFound)
	}
	if err := res.EnsureCancellable(); err != nil {
		if errs.Is(err, reservation.ErrAlreadyCancelled) {
			return nil, nil, errs.Mark(err, errs.ErrAlreadyCancelled)
		}
		return nil, nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	original, err := tx.Orders().FindLatestPaidForUpdate(ctx, order.TypeCourt, res.ID())
	if err != nil {
		return nil, nil, markRepoErr(err, errs.ErrOrderNotFound)
	}

	amount := original.PayAmount().Abs()
	refund, err := r.components.Orders.RecordRefundOrder(ctx, tx, original, amount, "")
	if err != nil {
		return nil, nil, err
	}

	var balanceAfter *decimal.Decimal
	if mid := res.MemberID(); mid != nil && amount.IsPositive() {
		bal, err := r.components.Ledger.Credit(ctx, tx, *mid, amount, cancelReason(res, in.Reason))
		if err != nil {
			return nil, nil, err
		}
		balanceAfter = &bal
	}

	if err := res.TransitionTo(reservation.StatusCancelled); err != nil {
		return nil, nil, errs.Mark(err, errs.ErrInvalidTransition)
	}
	if err := tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status()); err != nil {
		return nil, nil, markRepoErr(err, nil)
	}

	return &RefundResult{
		ReservationID: res.ID(),
		RefundOrderID: refund.ID(),
		RefundOrderNo: refund.OrderNo(),
		RefundAmount:  amount,
		BalanceAfter:  balanceAfter,
	}, res.MemberID(), nil
}

func (r *reservationCommandsImpl) AdvanceStatus(ctx context.Context, reservationID int64, status reservation.Status) (*StatusChangeResult, error) {
	if !status.IsValid() || status == reservation.StatusBooked {
		return nil, errs.Mark(errs.Newf("unsupported target status %q", status), errs.ErrValidation)
	}

	if status == reservation.StatusCancelled {
		refund, err := r.Cancel(ctx, CancelReservationInput{ReservationID: reservationID, Reason: "status changed to cancelled"})
		if err != nil {
			return nil, err
		}
		return &StatusChangeResult{ReservationID: reservationID, Status: status, Refund: refund}, nil
	}

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return markRepoErr(err, errs.ErrNotFound)
		}
		if err := res.TransitionTo(status); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}
		if err := tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status()); err != nil {
			return markRepoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "reservation status changed",
		slog.Int64("reservation_id", reservationID),
		slog.String("status", status.String()))
	return &StatusChangeResult{ReservationID: reservationID, Status: status}, nil
}

func (r *reservationCommandsImpl) Quote(ctx context.Context, in QuoteInput) (*QuoteResult, error) {
	slot, err := reservation.NewTimeSlot(in.Start, in.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	tier := r.tierSnapshot(ctx, in.MemberID)

	var result *QuoteResult
	err = r.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Courts().FindByID(ctx, in.CourtID)
		if err != nil {
			return markRepoErr(err, errs.ErrNotFound)
		}

		var m *member.Member
		if in.MemberID != nil {
			m, err = tx.Members().FindByID(ctx, *in.MemberID)
			if err != nil {
				return markRepoErr(err, errs.ErrNotFound)
			}
		}

		q, err := r.components.Prices.Quote(ctx, tx, c, slot, m, tier)
		if err != nil {
			return err
		}
		result = &QuoteResult{CourtID: c.ID(), CourtName: c.Name(), Start: slot.Start(), End: slot.End(), Quote: q}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// tierSnapshot reads the tier table before any transaction opens so a slow
// settings read never extends row lock hold times.
func (r *reservationCommandsImpl) tierSnapshot(ctx context.Context, memberID *int64) TierSnapshot {
	if memberID == nil {
		return TierSnapshot{}
	}
	table, err := r.tiers.Table(ctx)
	return TierSnapshot{Table: table, Err: err}
}

func (r *reservationCommandsImpl) publish(ctx context.Context, ev shared.Event) {
	if err := r.publisher.Publish(ctx, ev); err != nil {
		r.logger.WarnContext(ctx, "failed to publish event",
			slog.String("kind", string(ev.Kind)),
			slog.Int64("reservation_id", ev.ReservationID),
			slog.String("error", err.Error()))
	}
}

func bookingReason(c *court.Court, slot reservation.TimeSlot) string {
	return fmt.Sprintf("court booking: %s %s", c.Name(), slot)
}

func cancelReason(res *reservation.Reservation, reason string) string {
	if reason == "" {
		return fmt.Sprintf("refund for reservation %d", res.ID())
	}
	return fmt.Sprintf("refund for reservation %d: %s", res.ID(), reason)
}
