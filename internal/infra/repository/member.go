package repository

import (
	"context"

	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/infra/db"
	"gym-reservation-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const memberColumns = "id, name, balance, status, COALESCE(level, '')"

type MemberRepository struct {
	db db.DBTX
}

func NewMemberRepository(db db.DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*member.Member, error) {
	return r.find(ctx, "SELECT "+memberColumns+" FROM members WHERE id = $1", id)
}

func (r *MemberRepository) FindByIDForUpdate(ctx context.Context, id int64) (*member.Member, error) {
	return r.find(ctx, "SELECT "+memberColumns+" FROM members WHERE id = $1 FOR UPDATE", id)
}

func (r *MemberRepository) find(ctx context.Context, query string, id int64) (*member.Member, error) {
	var (
		mid     int64
		name    string
		balance pgtype.Numeric
		status  string
		level   string
	)
	if err := r.db.QueryRow(ctx, query, id).Scan(&mid, &name, &balance, &status, &level); err != nil {
		return nil, infra.WrapRepoErr("failed to find member", err)
	}
	bal, err := pgconv.DecimalFromNumeric(balance)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid member balance", err, infra.KindDBFailure)
	}
	return member.ReconstructMember(mid, name, bal, member.Status(status), level), nil
}

func (r *MemberRepository) UpdateBalance(ctx context.Context, m *member.Member) error {
	tag, err := r.db.Exec(ctx, "UPDATE members SET balance = $1 WHERE id = $2", pgconv.NumericFromDecimal(m.Balance()), m.ID())
	if err != nil {
		return infra.WrapRepoErr("failed to update member balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("member not found")
	}
	return nil
}
