package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID          int64           `json:"id"`
	CourtID     int64           `json:"court_id"`
	CourtName   string          `json:"court_name"`
	MemberID    *int64          `json:"member_id,omitempty"`
	MemberName  *string         `json:"member_name,omitempty"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     time.Time       `json:"end_time"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	Origin      string          `json:"origin"`
	Note        string          `json:"note"`
	CreatedAt   time.Time       `json:"created_at"`
	LatestOrder *OrderSummary   `json:"latest_order,omitempty"`
}

type OrderSummary struct {
	ID          int64           `json:"id"`
	OrderNo     string          `json:"order_no"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ReservationFilter struct {
	CourtID  *int64
	MemberID *int64
	Status   *string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

type LedgerEntryView struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Reason       string          `json:"reason"`
	CreatedAt    time.Time       `json:"created_at"`
}

type MemberLedgerView struct {
	MemberID int64              `json:"member_id"`
	Name     string             `json:"name"`
	Balance  decimal.Decimal    `json:"balance"`
	Entries  []*LedgerEntryView `json:"entries"`
}

type FreeCourtView struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

type CourtSearch struct {
	Category string
	Start    time.Time
	End      time.Time
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
