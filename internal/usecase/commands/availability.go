package commands

import (
	"context"

	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/usecase/shared"
)

// AvailabilityChecker answers whether a slot collides with an active reservation.
// Callers must already hold the court row lock so the answer stays true until commit.
type AvailabilityChecker struct{}

func NewAvailabilityChecker() *AvailabilityChecker {
	return &AvailabilityChecker{}
}

func (a *AvailabilityChecker) HasConflict(ctx context.Context, tx shared.Tx, courtID int64, slot reservation.TimeSlot) (bool, error) {
	n, err := tx.Reservations().CountOverlapping(ctx, courtID, slot)
	if err != nil {
		return false, markRepoErr(err, nil)
	}
	return n > 0, nil
}
