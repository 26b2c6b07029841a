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

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

// BuildFindMany renders the list query; the latest order per reservation comes from a lateral join.
func BuildFindMany(filter queries.ReservationFilter) (string, []any, error) {
	b := psql.Select(
		"r.id", "r.court_id", "c.name", "r.member_id", "m.name",
		"r.start_time", "r.end_time", "r.total_amount", "r.status", "r.origin", "r.note", "r.created_at",
		"o.id", "o.order_no", "o.status", "o.total_amount", "o.created_at",
	).
		From("reservations r").
		Join("courts c ON c.id = r.court_id").
		LeftJoin("members m ON m.id = r.member_id").
		LeftJoin(`LATERAL (
			SELECT id, order_no, status, total_amount, created_at FROM orders
			WHERE order_type = 'court' AND related_id = r.id
			ORDER BY id DESC LIMIT 1
		) o ON TRUE`)

	if filter.CourtID != nil {
		b = b.Where(sq.Eq{"r.court_id": *filter.CourtID})
	}
	if filter.MemberID != nil {
		b = b.Where(sq.Eq{"r.member_id": *filter.MemberID})
	}
	if filter.Status != nil {
		b = b.Where(sq.Eq{"r.status": *filter.Status})
	}
	if filter.From != nil {
		b = b.Where(sq.GtOrEq{"r.end_time": *filter.From})
	}
	if filter.To != nil {
		b = b.Where(sq.LtOrEq{"r.start_time": *filter.To})
	}

	// #nosec G115 -- limit and offset are clamped by the query layer
	return b.OrderBy("r.start_time DESC", "r.id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
}

func (r *ReservationReadStore) FindMany(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	query, args, err := BuildFindMany(filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation list query", err, infra.KindDBFailure)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationView, 0)
	for rows.Next() {
		var (
			v           queries.ReservationView
			memberID    pgtype.Int8
			memberName  pgtype.Text
			start, end  pgtype.Timestamptz
			total       pgtype.Numeric
			createdAt   pgtype.Timestamptz
			orderID     pgtype.Int8
			orderNo     pgtype.Text
			orderStatus pgtype.Text
			orderTotal  pgtype.Numeric
			orderAt     pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.CourtID, &v.CourtName, &memberID, &memberName,
			&start, &end, &total, &v.Status, &v.Origin, &v.Note, &createdAt,
			&orderID, &orderNo, &orderStatus, &orderTotal, &orderAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}

		v.MemberID = pgconv.Int64PtrFromPgtype(memberID)
		v.MemberName = pgconv.StringPtrFromPgtype(memberName)
		v.StartTime, v.EndTime, v.CreatedAt = start.Time, end.Time, createdAt.Time
		if v.TotalAmount, err = pgconv.DecimalFromNumeric(total); err != nil {
			return nil, infra.WrapRepoErr("invalid reservation amount", err, infra.KindDBFailure)
		}

		if orderID.Valid {
			amount, err := pgconv.DecimalFromNumeric(orderTotal)
			if err != nil {
				return nil, infra.WrapRepoErr("invalid order amount", err, infra.KindDBFailure)
			}
			v.LatestOrder = &queries.OrderSummary{
				ID:          orderID.Int64,
				OrderNo:     orderNo.String,
				Status:      orderStatus.String,
				TotalAmount: amount,
				CreatedAt:   orderAt.Time,
			}
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}
