package repository

import (
	"context"

	"gym-reservation-engine/internal/domain/court"
	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/infra/db"
	"gym-reservation-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const courtColumns = "id, name, category, hourly_rate, status"

type CourtRepository struct {
	db db.DBTX
}

func NewCourtRepository(db db.DBTX) *CourtRepository {
	return &CourtRepository{db: db}
}

func (r *CourtRepository) FindByID(ctx context.Context, id int64) (*court.Court, error) {
	return r.find(ctx, "SELECT "+courtColumns+" FROM courts WHERE id = $1", id)
}

func (r *CourtRepository) FindByIDForUpdate(ctx context.Context, id int64) (*court.Court, error) {
	return r.find(ctx, "SELECT "+courtColumns+" FROM courts WHERE id = $1 FOR UPDATE", id)
}

func (r *CourtRepository) find(ctx context.Context, query string, id int64) (*court.Court, error) {
	c, err := scanCourt(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find court", err)
	}
	return c, nil
}

func scanCourt(row pgx.Row) (*court.Court, error) {
	var (
		id       int64
		name     string
		category string
		rate     pgtype.Numeric
		status   string
	)
	if err := row.Scan(&id, &name, &category, &rate, &status); err != nil {
		return nil, err
	}
	hourlyRate, err := pgconv.DecimalFromNumeric(rate)
	if err != nil {
		return nil, err
	}
	return court.ReconstructCourt(id, name, category, hourlyRate, court.Status(status)), nil
}
