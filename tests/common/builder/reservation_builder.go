//go:build unit || e2e

package builder

import (
	"time"

	domres "gym-reservation-engine/internal/domain/reservation"

	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID          int64
	CourtID     int64
	MemberID    *int64
	Start       time.Time
	End         time.Time
	TotalAmount decimal.Decimal
	Status      domres.Status
	Origin      domres.Origin
	Note        string
	Now         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	memberID := int64(1)
	return &ReservationBuilder{
		CourtID:     1,
		MemberID:    &memberID,
		Start:       now.Add(time.Hour),
		End:         now.Add(3 * time.Hour),
		TotalAmount: decimal.RequireFromString("100.00"),
		Status:      domres.StatusBooked,
		Origin:      domres.OriginAdmin,
		Note:        "",
		Now:         now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) WithoutMember() *ReservationBuilder {
	b.MemberID = nil
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	slot, err := domres.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return domres.NewReservation(b.CourtID, b.MemberID, slot, b.TotalAmount, b.Origin, domres.NewNote(b.Note), b.Now)
}

// BuildStored skips creation rules so tests can seed any status.
func (b *ReservationBuilder) BuildStored() *domres.Reservation {
	slot, err := domres.NewTimeSlot(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return domres.ReconstructReservation(b.ID, b.CourtID, b.MemberID, slot, b.TotalAmount, b.Status, b.Origin, domres.NewNote(b.Note), b.Now)
}
