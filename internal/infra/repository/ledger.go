package repository

import (
	"context"

	"gym-reservation-engine/internal/domain/ledger"
	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/infra/db"
	"gym-reservation-engine/internal/pkg/pgconv"
)

type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(db db.DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Append(ctx context.Context, e *ledger.Entry) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO member_ledger (member_id, entry_type, amount, balance_after, reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		e.MemberID(), e.Type().String(),
		pgconv.NumericFromDecimal(e.Amount()), pgconv.NumericFromDecimal(e.BalanceAfter()),
		e.Reason(), pgconv.TimeToPgtype(e.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to append ledger entry", err)
	}
	return id, nil
}
