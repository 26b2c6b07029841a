package request

import (
	"strings"
	"time"

	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// AdminCreateReservationRequest books on behalf of a member, or a walk-in when member_id is omitted.
type AdminCreateReservationRequest struct {
	CourtID   int64     `json:"court_id" binding:"required,gt=0"`
	MemberID  *int64    `json:"member_id" binding:"omitempty,gt=0"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
	Note      *string   `json:"note" binding:"omitempty,max=255"`
	PayMethod string    `json:"pay_method" binding:"omitempty,max=32"`
}

func (r AdminCreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CourtID:   r.CourtID,
		MemberID:  r.MemberID,
		Start:     r.StartTime,
		End:       r.EndTime,
		Origin:    reservation.OriginAdmin,
		Note:      trimmed(r.Note),
		PayMethod: strings.TrimSpace(r.PayMethod),
	}
}

// MemberCreateReservationRequest uses the gym's wall clock: a date plus HH:MM times.
type MemberCreateReservationRequest struct {
	CourtID   int64   `json:"court_id" binding:"required,gt=0"`
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string  `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string  `json:"end_time" binding:"required,datetime=15:04"`
	Note      *string `json:"note" binding:"omitempty,max=255"`
}

func (r MemberCreateReservationRequest) ToInput(memberID int64, loc *time.Location) (commands.CreateReservationInput, error) {
	start, err := time.ParseInLocation(dateLayout+" "+clockLayout, r.Date+" "+r.StartTime, loc)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	end, err := time.ParseInLocation(dateLayout+" "+clockLayout, r.Date+" "+r.EndTime, loc)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		CourtID:  r.CourtID,
		MemberID: &memberID,
		Start:    start,
		End:      end,
		Origin:   reservation.OriginMemberSelf,
		Note:     trimmed(r.Note),
	}, nil
}

type CancelReservationRequest struct {
	Reason string `json:"reason" binding:"max=255"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=booked in_progress completed cancelled"`
}

type ListReservationsQuery struct {
	CourtID  *int64  `form:"court_id" binding:"omitempty,gt=0"`
	MemberID *int64  `form:"member_id" binding:"omitempty,gt=0"`
	Status   *string `form:"status" binding:"omitempty,oneof=booked in_progress completed cancelled"`
	Limit    int     `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset   int     `form:"offset" binding:"omitempty,min=0"`
}

func (q ListReservationsQuery) ToFilter() queries.ReservationFilter {
	return queries.ReservationFilter{
		CourtID:  q.CourtID,
		MemberID: q.MemberID,
		Status:   q.Status,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
}

type QuoteQuery struct {
	CourtID   int64     `form:"court_id" binding:"required,gt=0"`
	MemberID  *int64    `form:"member_id" binding:"omitempty,gt=0"`
	StartTime time.Time `form:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime   time.Time `form:"end_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (q QuoteQuery) ToInput() commands.QuoteInput {
	return commands.QuoteInput{CourtID: q.CourtID, MemberID: q.MemberID, Start: q.StartTime, End: q.EndTime}
}

type LimitQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
