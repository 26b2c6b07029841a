package commands

import (
	"context"

	"gym-reservation-engine/internal/domain/ledger"
	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/pkg/clock"
	"gym-reservation-engine/internal/pkg/errs"
	"gym-reservation-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// BalanceLedger is the only writer of member balances. Each call locks the
// member row and appends exactly one entry whose balance_after matches it.
type BalanceLedger struct {
	clock clock.Clock
}

func NewBalanceLedger(clk clock.Clock) *BalanceLedger {
	return &BalanceLedger{clock: clk}
}

func (l *BalanceLedger) Charge(ctx context.Context, tx shared.Tx, memberID int64, amount decimal.Decimal, reason string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, errs.Mark(errs.Newf("charge amount must be positive, got %s", amount), errs.ErrValidation)
	}

	m, err := tx.Members().FindByIDForUpdate(ctx, memberID)
	if err != nil {
		return decimal.Zero, markRepoErr(err, errs.ErrNotFound)
	}
	if err := m.EnsureActive(); err != nil {
		return decimal.Zero, errs.Mark(err, errs.ErrUnavailable)
	}

	if _, err := m.Debit(amount); err != nil {
		if errs.Is(err, member.ErrInsufficientBalance) {
			return decimal.Zero, errs.Mark(errs.Wrapf(err, "balance %s, required %s", m.Balance(), amount), errs.ErrInsufficientBalance)
		}
		return decimal.Zero, errs.Mark(err, errs.ErrValidation)
	}

	return l.persist(ctx, tx, m, ledger.EntryCharge, amount, reason)
}

func (l *BalanceLedger) Credit(ctx context.Context, tx shared.Tx, memberID int64, amount decimal.Decimal, reason string) (decimal.Decimal, error) {
	return l.credit(ctx, tx, memberID, ledger.EntryRefund, amount, reason)
}

func (l *BalanceLedger) TopUp(ctx context.Context, tx shared.Tx, memberID int64, amount decimal.Decimal, reason string) (decimal.Decimal, error) {
	return l.credit(ctx, tx, memberID, ledger.EntryTopUp, amount, reason)
}

// credit skips the status check so refunds reach suspended members too.
func (l *BalanceLedger) credit(ctx context.Context, tx shared.Tx, memberID int64, t ledger.EntryType, amount decimal.Decimal, reason string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, errs.Mark(errs.Newf("credit amount must be positive, got %s", amount), errs.ErrValidation)
	}

	m, err := tx.Members().FindByIDForUpdate(ctx, memberID)
	if err != nil {
		return decimal.Zero, markRepoErr(err, errs.ErrNotFound)
	}
	if _, err := m.Credit(amount); err != nil {
		return decimal.Zero, errs.Mark(err, errs.ErrValidation)
	}

	return l.persist(ctx, tx, m, t, amount, reason)
}

func (l *BalanceLedger) persist(ctx context.Context, tx shared.Tx, m *member.Member, t ledger.EntryType, amount decimal.Decimal, reason string) (decimal.Decimal, error) {
	if err := tx.Members().UpdateBalance(ctx, m); err != nil {
		return decimal.Zero, markRepoErr(err, nil)
	}

	entry, err := ledger.NewEntry(m.ID(), t, amount, m.Balance(), reason, l.clock.Now())
	if err != nil {
		return decimal.Zero, errs.Mark(err, errs.ErrIntegrity)
	}
	if _, err := tx.Ledger().Append(ctx, entry); err != nil {
		return decimal.Zero, markRepoErr(err, nil)
	}

	return m.Balance(), nil
}
