package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTimeSlot = errors.New("end time must be after start time")
	ErrSlotInPast      = errors.New("start time cannot be in the past")
)

var secondsPerHour = decimal.NewFromInt(3600)

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Hours is exact to the second, e.g. 90 minutes is 1.5.
func (ts TimeSlot) Hours() decimal.Decimal {
	secs := decimal.NewFromInt(int64(ts.Duration() / time.Second))
	return secs.DivRound(secondsPerHour, 6)
}

// Overlaps treats touching slots (one ends exactly when the other starts) as free.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return !(!other.end.After(ts.start) || !other.start.Before(ts.end))
}

func (ts TimeSlot) ValidateNotPastAt(now time.Time) error {
	if ts.start.Before(now) {
		return ErrSlotInPast
	}
	return nil
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s ~ %s", ts.start.Format("2006-01-02 15:04"), ts.end.Format("15:04"))
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
