package repository

import (
	"context"

	"gym-reservation-engine/internal/domain/card"
	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/infra/db"
	"gym-reservation-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type CardRepository struct {
	db db.DBTX
}

func NewCardRepository(db db.DBTX) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) ListByMember(ctx context.Context, memberID int64) ([]*card.MembershipCard, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, member_id, kind, remaining_visits, discount_percent, start_date, end_date
		 FROM membership_cards WHERE member_id = $1 ORDER BY id`, memberID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list membership cards", err)
	}
	defer rows.Close()

	var cards []*card.MembershipCard
	for rows.Next() {
		var (
			id, mid    int64
			kind       string
			visits     pgtype.Int4
			discount   pgtype.Int4
			start, end pgtype.Date
		)
		if err := rows.Scan(&id, &mid, &kind, &visits, &discount, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan membership card", err)
		}
		cards = append(cards, card.ReconstructCard(id, mid, card.Kind(kind),
			pgconv.Int32PtrFromPgtype(visits), pgconv.Int32PtrFromPgtype(discount), start.Time, end.Time))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate membership cards", err)
	}
	return cards, nil
}
