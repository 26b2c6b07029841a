package readstore

import (
	"context"

	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/infra/db"
	"gym-reservation-engine/internal/pkg/pgconv"
	"gym-reservation-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(db db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: db}
}

func (r *LedgerReadStore) FindByMember(ctx context.Context, memberID int64, limit int) (*queries.MemberLedgerView, error) {
	view := &queries.MemberLedgerView{MemberID: memberID, Entries: make([]*queries.LedgerEntryView, 0)}

	var balance pgtype.Numeric
	err := r.db.QueryRow(ctx, "SELECT name, balance FROM members WHERE id = $1", memberID).Scan(&view.Name, &balance)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find member", err)
	}
	if view.Balance, err = pgconv.DecimalFromNumeric(balance); err != nil {
		return nil, infra.WrapRepoErr("invalid member balance", err, infra.KindDBFailure)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, entry_type, amount, balance_after, reason, created_at
		 FROM member_ledger WHERE member_id = $1 ORDER BY id DESC LIMIT $2`, memberID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e             queries.LedgerEntryView
			amount, after pgtype.Numeric
			createdAt     pgtype.Timestamptz
		)
		if err := rows.Scan(&e.ID, &e.Type, &amount, &after, &e.Reason, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger entry", err)
		}
		if e.Amount, err = pgconv.DecimalFromNumeric(amount); err != nil {
			return nil, infra.WrapRepoErr("invalid ledger amount", err, infra.KindDBFailure)
		}
		if e.BalanceAfter, err = pgconv.DecimalFromNumeric(after); err != nil {
			return nil, infra.WrapRepoErr("invalid ledger balance", err, infra.KindDBFailure)
		}
		e.CreatedAt = createdAt.Time
		view.Entries = append(view.Entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ledger entries", err)
	}
	return view, nil
}
