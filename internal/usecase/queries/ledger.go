package queries

import (
	"context"

	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/pkg/errs"
)

type LedgerQueries interface {
	History(ctx context.Context, memberID int64, limit int) (*MemberLedgerView, error)
}

type LedgerViewRepo interface {
	FindByMember(ctx context.Context, memberID int64, limit int) (*MemberLedgerView, error)
}

type ledgerQueriesImpl struct {
	repo LedgerViewRepo
}

func NewLedgerQueries(repo LedgerViewRepo) LedgerQueries {
	return &ledgerQueriesImpl{repo: repo}
}

func (q *ledgerQueriesImpl) History(ctx context.Context, memberID int64, limit int) (*MemberLedgerView, error) {
	v, err := q.repo.FindByMember(ctx, memberID, clampLimit(limit))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	return v, nil
}
