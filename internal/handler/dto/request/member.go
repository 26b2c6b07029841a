package request

import (
	"github.com/shopspring/decimal"
)

type TopUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" binding:"max=255"`
}
