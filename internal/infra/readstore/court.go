package readstore

import (
	"context"

	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/infra/db"
	"gym-reservation-engine/internal/pkg/pgconv"
	"gym-reservation-engine/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

type CourtReadStore struct {
	db db.DBTX
}

func NewCourtReadStore(db db.DBTX) *CourtReadStore {
	return &CourtReadStore{db: db}
}

func BuildFindFree(search queries.CourtSearch) (string, []any, error) {
	b := psql.Select("c.id", "c.name", "c.category", "c.hourly_rate").
		From("courts c").
		Where(sq.Eq{"c.status": "available"}).
		Where(`NOT EXISTS (
			SELECT 1 FROM reservations r
			WHERE r.court_id = c.id AND r.status <> 'cancelled'
			AND NOT (r.end_time <= ? OR r.start_time >= ?)
		)`, search.Start, search.End)
	if search.Category != "" {
		b = b.Where(sq.Eq{"c.category": search.Category})
	}
	return b.OrderBy("c.id").ToSql()
}

func (r *CourtReadStore) FindFree(ctx context.Context, search queries.CourtSearch) ([]*queries.FreeCourtView, error) {
	query, args, err := BuildFindFree(search)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build court search", err, infra.KindDBFailure)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search courts", err)
	}
	defer rows.Close()

	result := make([]*queries.FreeCourtView, 0)
	for rows.Next() {
		var (
			v    queries.FreeCourtView
			rate pgtype.Numeric
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &rate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court", err)
		}
		if v.HourlyRate, err = pgconv.DecimalFromNumeric(rate); err != nil {
			return nil, infra.WrapRepoErr("invalid court rate", err, infra.KindDBFailure)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate courts", err)
	}
	return result, nil
}
