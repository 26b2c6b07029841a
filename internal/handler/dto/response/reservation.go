package response

import (
	"time"

	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	HourlyRate      decimal.Decimal `json:"hourlyRate"`
	Hours           decimal.Decimal `json:"hours"`
	BaseAmount      decimal.Decimal `json:"baseAmount"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	DiscountSource  string          `json:"discountSource"`
	DiscountCardID  *int64          `json:"discountCardId,omitempty"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	Amount          decimal.Decimal `json:"amount"`
}

type BookingResponse struct {
	ReservationID int64            `json:"reservationId"`
	OrderID       int64            `json:"orderId"`
	OrderNo       string           `json:"orderNo"`
	CourtName     string           `json:"courtName"`
	TimeRange     string           `json:"timeRange"`
	Start         time.Time        `json:"start"`
	End           time.Time        `json:"end"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	BalanceAfter  *decimal.Decimal `json:"balanceAfter,omitempty"`
	Quote         QuoteResponse    `json:"quote"`
}

type RefundResponse struct {
	ReservationID int64            `json:"reservationId"`
	RefundOrderID int64            `json:"refundOrderId"`
	RefundOrderNo string           `json:"refundOrderNo"`
	RefundAmount  decimal.Decimal  `json:"refundAmount"`
	BalanceAfter  *decimal.Decimal `json:"balanceAfter,omitempty"`
}

type StatusChangeResponse struct {
	ReservationID int64           `json:"reservationId"`
	Status        string          `json:"status"`
	Refund        *RefundResponse `json:"refund,omitempty"`
}

type CourtQuoteResponse struct {
	CourtID   int64         `json:"courtId"`
	CourtName string        `json:"courtName"`
	Start     time.Time     `json:"start"`
	End       time.Time     `json:"end"`
	Quote     QuoteResponse `json:"quote"`
}

type OrderSummaryResponse struct {
	ID          int64           `json:"id"`
	OrderNo     string          `json:"orderNo"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ReservationResponse struct {
	ID          int64                 `json:"id"`
	CourtID     int64                 `json:"courtId"`
	CourtName   string                `json:"courtName"`
	MemberID    *int64                `json:"memberId,omitempty"`
	MemberName  *string               `json:"memberName,omitempty"`
	StartTime   time.Time             `json:"startTime"`
	EndTime     time.Time             `json:"endTime"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	Status      string                `json:"status"`
	Origin      string                `json:"origin"`
	Note        string                `json:"note,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	LatestOrder *OrderSummaryResponse `json:"latestOrder,omitempty"`
}

func FromQuote(q commands.QuoteResult) *CourtQuoteResponse {
	return &CourtQuoteResponse{
		CourtID:   q.CourtID,
		CourtName: q.CourtName,
		Start:     q.Start,
		End:       q.End,
		Quote:     quoteBody(q.Quote),
	}
}

func FromBooking(r *commands.BookingResult) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, r); err != nil {
		return nil, err
	}
	resp.Quote = quoteBody(r.Quote)
	return &resp, nil
}

func FromRefund(r *commands.RefundResult) (*RefundResponse, error) {
	var resp RefundResponse
	if err := copier.Copy(&resp, r); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromStatusChange(r *commands.StatusChangeResult) (*StatusChangeResponse, error) {
	resp := &StatusChangeResponse{ReservationID: r.ReservationID, Status: r.Status.String()}
	if r.Refund != nil {
		refund, err := FromRefund(r.Refund)
		if err != nil {
			return nil, err
		}
		resp.Refund = refund
	}
	return resp, nil
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	out := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		var item ReservationResponse
		if err := copier.Copy(&item, v); err != nil {
			return nil, err
		}
		if v.LatestOrder != nil {
			item.LatestOrder = &OrderSummaryResponse{}
			if err := copier.Copy(item.LatestOrder, v.LatestOrder); err != nil {
				return nil, err
			}
		}
		out = append(out, &item)
	}
	return out, nil
}
