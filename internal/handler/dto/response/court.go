package response

import (
	"gym-reservation-engine/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type FreeCourtResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

func FromFreeCourts(views []*queries.FreeCourtView) []*FreeCourtResponse {
	out := make([]*FreeCourtResponse, len(views))
	for i, v := range views {
		out[i] = &FreeCourtResponse{ID: v.ID, Name: v.Name, Category: v.Category, HourlyRate: v.HourlyRate}
	}
	return out
}
