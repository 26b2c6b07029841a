package queries

import (
	"context"

	"gym-reservation-engine/internal/pkg/errs"
)

type CourtQueries interface {
	SearchFree(ctx context.Context, search CourtSearch) ([]*FreeCourtView, error)
}

type CourtViewRepo interface {
	FindFree(ctx context.Context, search CourtSearch) ([]*FreeCourtView, error)
}

type courtQueriesImpl struct {
	repo CourtViewRepo
}

func NewCourtQueries(repo CourtViewRepo) CourtQueries {
	return &courtQueriesImpl{repo: repo}
}

// SearchFree lists available courts with no active reservation overlapping the window.
func (q *courtQueriesImpl) SearchFree(ctx context.Context, search CourtSearch) ([]*FreeCourtView, error) {
	if !search.End.After(search.Start) {
		return nil, errs.Mark(errs.New("end time must be after start time"), errs.ErrValidation)
	}
	return q.repo.FindFree(ctx, search)
}
