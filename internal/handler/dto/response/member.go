package response

import (
	"time"

	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type TopUpResponse struct {
	MemberID     int64           `json:"memberId"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
}

type LedgerEntryResponse struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	Reason       string          `json:"reason"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type LedgerResponse struct {
	MemberID int64                  `json:"memberId"`
	Name     string                 `json:"name"`
	Balance  decimal.Decimal        `json:"balance"`
	Entries  []*LedgerEntryResponse `json:"entries"`
}

func FromTopUp(r *commands.TopUpResult) *TopUpResponse {
	return &TopUpResponse{MemberID: r.MemberID, Amount: r.Amount, BalanceAfter: r.BalanceAfter}
}

func FromLedger(v *queries.MemberLedgerView) (*LedgerResponse, error) {
	resp := &LedgerResponse{MemberID: v.MemberID, Name: v.Name, Balance: v.Balance, Entries: []*LedgerEntryResponse{}}
	for _, e := range v.Entries {
		var item LedgerEntryResponse
		if err := copier.Copy(&item, e); err != nil {
			return nil, err
		}
		resp.Entries = append(resp.Entries, &item)
	}
	return resp, nil
}
