package commands

import (
	"context"

	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/domain/order"
	"gym-reservation-engine/internal/domain/pricing"
	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/pkg/clock"
	"gym-reservation-engine/internal/pkg/errs"
	"gym-reservation-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const walkInName = "walk-in"

type OrderRecorder struct {
	numbers  *order.NumberGenerator
	clock    clock.Clock
	currency string
}

func NewOrderRecorder(numbers *order.NumberGenerator, clk clock.Clock, currency string) *OrderRecorder {
	return &OrderRecorder{numbers: numbers, clock: clk, currency: currency}
}

// RecordPaidOrder mints the paid court order for a freshly inserted reservation.
// m is nil for walk-in bookings.
func (r *OrderRecorder) RecordPaidOrder(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	m *member.Member,
	q pricing.Quote,
	payMethod string,
) (*order.Order, error) {
	name := walkInName
	if m != nil {
		name = m.Name()
	}

	o, err := order.NewPaidOrder(order.PaidOrderParams{
		OrderNo:        r.numbers.Next(order.TypeCourt),
		Type:           order.TypeCourt,
		RelatedID:      res.ID(),
		MemberID:       res.MemberID(),
		MemberName:     name,
		TotalAmount:    q.Amount,
		DiscountAmount: q.DiscountAmount,
		Currency:       r.currency,
		PayMethod:      payMethod,
		Source:         res.Origin().String(),
		Remark:         res.Note().String(),
		Now:            r.clock.Now(),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	id, err := tx.Orders().Create(ctx, o)
	if err != nil {
		return nil, markRepoErr(err, nil)
	}
	o.AssignID(id)
	return o, nil
}

// RecordRefundOrder writes the negative mirror of original and flips original to refunded.
func (r *OrderRecorder) RecordRefundOrder(
	ctx context.Context,
	tx shared.Tx,
	original *order.Order,
	amount decimal.Decimal,
	remark string,
) (*order.Order, error) {
	refund, err := order.NewRefundOrder(original, r.numbers.Next(order.TypeRefund), amount, remark, r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrOrderNotFound)
	}
	if err := original.MarkRefunded(); err != nil {
		return nil, errs.Mark(err, errs.ErrOrderNotFound)
	}

	id, err := tx.Orders().Create(ctx, refund)
	if err != nil {
		return nil, markRepoErr(err, nil)
	}
	refund.AssignID(id)

	if err := tx.Orders().UpdateStatus(ctx, original.ID(), order.StatusRefunded); err != nil {
		return nil, markRepoErr(err, nil)
	}
	return refund, nil
}
