package queries

import (
	"context"
)

type ReservationQueries interface {
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	ListByMember(ctx context.Context, memberID int64, limit int) ([]*ReservationView, error)
}

type ReservationViewRepo interface {
	FindMany(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error) {
	filter.Limit = clampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return q.repo.FindMany(ctx, filter)
}

func (q *reservationQueriesImpl) ListByMember(ctx context.Context, memberID int64, limit int) ([]*ReservationView, error) {
	return q.repo.FindMany(ctx, ReservationFilter{MemberID: &memberID, Limit: clampLimit(limit)})
}
