//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReservationRepository_Create(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	slot, err := reservation.NewTimeSlot(start, start.Add(2*time.Hour))
	require.NoError(t, err)

	res := reservation.ReconstructReservation(0, 1, nil, slot, reservationAmount, reservation.StatusBooked,
		reservation.OriginAdmin, reservation.NewNote(""), start.Add(-time.Hour))

	tests := []struct {
		name     string
		row      stubRow
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", row: stubRow{id: 3}},
		{name: "exclusion constraint", row: stubRow{err: &pgconn.PgError{Code: "23P01"}}, wantKind: infra.KindExclusionViolated},
		{name: "unknown court", row: stubRow{err: &pgconn.PgError{Code: "23503"}}, wantKind: infra.KindForeignKeyViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(tt.row)
			repo := NewReservationRepository(db)

			id, err := repo.Create(context.Background(), res)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3), id)
		})
	}
}

func TestReservationRepository_CountOverlapping(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	slot, err := reservation.NewTimeSlot(start, start.Add(time.Hour))
	require.NoError(t, err)

	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything,
		mock.MatchedBy(func(q string) bool {
			return containsAll(q, "court_id = $1", "status <> $2", "NOT (end_time <= $3 OR start_time >= $4)")
		}),
		[]any{int64(1), "cancelled", slot.Start(), slot.End()},
	).Return(countRow{n: 2})
	repo := NewReservationRepository(db)

	n, err := repo.CountOverlapping(context.Background(), 1, slot)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	db.AssertExpectations(t)
}

type countRow struct{ n int }

func (r countRow) Scan(dest ...any) error {
	*(dest[0].(*int)) = r.n
	return nil
}
