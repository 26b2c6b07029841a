package commands

import (
	"context"
	"log/slog"

	"gym-reservation-engine/internal/pkg/clock"
	"gym-reservation-engine/internal/pkg/errs"
	"gym-reservation-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type TopUpResult struct {
	MemberID     int64
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}

type MemberCommands interface {
	TopUp(ctx context.Context, memberID int64, amount decimal.Decimal, reason string) (*TopUpResult, error)
}

type memberCommandsImpl struct {
	uow       shared.UnitOfWork
	ledger    *BalanceLedger
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewMemberCommands(uow shared.UnitOfWork, ledger *BalanceLedger, publisher shared.EventPublisher, clk clock.Clock, logger *slog.Logger) MemberCommands {
	return &memberCommandsImpl{uow: uow, ledger: ledger, publisher: publisher, clock: clk, logger: logger}
}

func (m *memberCommandsImpl) TopUp(ctx context.Context, memberID int64, amount decimal.Decimal, reason string) (*TopUpResult, error) {
	if !amount.IsPositive() {
		return nil, errs.Mark(errs.Newf("top-up amount must be positive, got %s", amount), errs.ErrValidation)
	}
	if reason == "" {
		reason = "balance top-up"
	}

	var balance decimal.Decimal
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := m.ledger.TopUp(ctx, tx, memberID, amount, reason)
		if err != nil {
			return err
		}
		balance = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "member topped up",
		slog.Int64("member_id", memberID),
		slog.String("amount", amount.StringFixed(2)))

	id := memberID
	if err := m.publisher.Publish(ctx, shared.Event{
		Kind:         shared.EventMemberToppedUp,
		MemberID:     &id,
		Amount:       amount,
		BalanceAfter: &balance,
		OccurredAt:   m.clock.Now(),
	}); err != nil {
		m.logger.WarnContext(ctx, "failed to publish event", slog.String("kind", string(shared.EventMemberToppedUp)), slog.String("error", err.Error()))
	}

	return &TopUpResult{MemberID: memberID, Amount: amount, BalanceAfter: balance}, nil
}
