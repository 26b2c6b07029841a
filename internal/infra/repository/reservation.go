package repository

import (
	"context"

	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/infra/db"
	"gym-reservation-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CountOverlapping counts active reservations with NOT(end <= start OR start >= end).
func (r *ReservationRepository) CountOverlapping(ctx context.Context, courtID int64, slot reservation.TimeSlot) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("reservations").
		Where("court_id = ?", courtID).
		Where("status <> ?", reservation.StatusCancelled.String()).
		Where("NOT (end_time <= ? OR start_time >= ?)", slot.Start(), slot.End()).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build overlap query", err, infra.KindDBFailure)
	}

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO reservations (court_id, member_id, start_time, end_time, total_amount, status, origin, note, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		res.CourtID(),
		pgconv.Int64PtrToPgtype(res.MemberID()),
		pgconv.TimeToPgtype(res.TimeSlot().Start()),
		pgconv.TimeToPgtype(res.TimeSlot().End()),
		pgconv.NumericFromDecimal(res.TotalAmount()),
		res.Status().String(),
		res.Origin().String(),
		res.Note().String(),
		pgconv.TimeToPgtype(res.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	var (
		rid, courtID int64
		memberID     pgtype.Int8
		start, end   pgtype.Timestamptz
		total        pgtype.Numeric
		status       string
		origin       string
		note         string
		createdAt    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, court_id, member_id, start_time, end_time, total_amount, status, origin, note, created_at
		 FROM reservations WHERE id = $1 FOR UPDATE`, id,
	).Scan(&rid, &courtID, &memberID, &start, &end, &total, &status, &origin, &note, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	slot, err := reservation.NewTimeSlot(start.Time, end.Time)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid slot", err, infra.KindDBFailure)
	}
	amount, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation amount", err, infra.KindDBFailure)
	}

	return reservation.ReconstructReservation(rid, courtID, pgconv.Int64PtrFromPgtype(memberID), slot, amount,
		reservation.Status(status), reservation.Origin(origin), reservation.NewNote(note), createdAt.Time), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status reservation.Status) error {
	tag, err := r.db.Exec(ctx, "UPDATE reservations SET status = $1 WHERE id = $2", status.String(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("reservation not found")
	}
	return nil
}
