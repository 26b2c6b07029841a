package request

import (
	"errors"
	"time"

	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"
)

var ErrHourWindow = errors.New("end_hour must be after start_hour")

// HourWindow is a whole-hour window on one day. EndHour 24 is midnight of the next day.
type HourWindow struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartHour *int   `json:"start_hour" binding:"required,min=0,max=23"`
	EndHour   int    `json:"end_hour" binding:"required,min=1,max=24"`
}

func (w HourWindow) Bounds(loc *time.Location) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, w.Date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if w.StartHour == nil || w.EndHour <= *w.StartHour {
		return time.Time{}, time.Time{}, ErrHourWindow
	}
	start := day.Add(time.Duration(*w.StartHour) * time.Hour)
	end := day.Add(time.Duration(w.EndHour) * time.Hour)
	return start, end, nil
}

type SearchCourtsRequest struct {
	HourWindow
	Category string `json:"category" binding:"omitempty,max=64"`
}

func (r SearchCourtsRequest) ToSearch(loc *time.Location) (queries.CourtSearch, error) {
	start, end, err := r.Bounds(loc)
	if err != nil {
		return queries.CourtSearch{}, err
	}
	return queries.CourtSearch{Category: r.Category, Start: start, End: end}, nil
}

type BookCourtRequest struct {
	HourWindow
	CourtID int64   `json:"court_id" binding:"required,gt=0"`
	Note    *string `json:"note" binding:"omitempty,max=255"`
}

func (r BookCourtRequest) ToInput(memberID int64, loc *time.Location) (commands.CreateReservationInput, error) {
	start, end, err := r.Bounds(loc)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		CourtID:  r.CourtID,
		MemberID: &memberID,
		Start:    start,
		End:      end,
		Origin:   reservation.OriginAgent,
		Note:     trimmed(r.Note),
	}, nil
}
