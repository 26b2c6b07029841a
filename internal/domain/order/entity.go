package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotRefundable = errors.New("order is not in a refundable state")
	ErrNegativePaid  = errors.New("paid order amount cannot be negative")
)

type Order struct {
	id             int64
	orderNo        string
	orderType      Type
	relatedID      int64
	memberID       *int64
	memberName     string
	totalAmount    decimal.Decimal
	payAmount      decimal.Decimal
	discountAmount decimal.Decimal
	currency       string
	payMethod      string
	status         Status
	source         string
	remark         string
	createdAt      time.Time
	paidAt         *time.Time
}

type PaidOrderParams struct {
	OrderNo        string
	Type           Type
	RelatedID      int64
	MemberID       *int64
	MemberName     string
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	Currency       string
	PayMethod      string
	Source         string
	Remark         string
	Now            time.Time
}

func NewPaidOrder(p PaidOrderParams) (*Order, error) {
	if p.TotalAmount.IsNegative() {
		return nil, ErrNegativePaid
	}
	paidAt := p.Now
	return &Order{
		orderNo:        p.OrderNo,
		orderType:      p.Type,
		relatedID:      p.RelatedID,
		memberID:       p.MemberID,
		memberName:     p.MemberName,
		totalAmount:    p.TotalAmount,
		payAmount:      p.TotalAmount,
		discountAmount: p.DiscountAmount,
		currency:       p.Currency,
		payMethod:      p.PayMethod,
		status:         StatusPaid,
		source:         p.Source,
		remark:         p.Remark,
		createdAt:      p.Now,
		paidAt:         &paidAt,
	}, nil
}

// NewRefundOrder mirrors a paid order with a negative amount pointing back at it.
// An empty remark defaults to "refund of <original no>".
func NewRefundOrder(original *Order, orderNo string, amount decimal.Decimal, remark string, now time.Time) (*Order, error) {
	if original.status != StatusPaid {
		return nil, ErrNotRefundable
	}
	if remark == "" {
		remark = "refund of " + original.orderNo
	}
	neg := amount.Abs().Neg()
	return &Order{
		orderNo:        orderNo,
		orderType:      TypeRefund,
		relatedID:      original.id,
		memberID:       original.memberID,
		memberName:     original.memberName,
		totalAmount:    neg,
		payAmount:      neg,
		discountAmount: decimal.Zero,
		currency:       original.currency,
		payMethod:      original.payMethod,
		status:         StatusRefunded,
		source:         SourceRefund,
		remark:         remark,
		createdAt:      now,
		paidAt:         nil,
	}, nil
}

func (o *Order) MarkRefunded() error {
	if o.status != StatusPaid {
		return ErrNotRefundable
	}
	o.status = StatusRefunded
	return nil
}

func (o *Order) AssignID(id int64) {
	o.id = id
}

type Snapshot struct {
	ID             int64
	OrderNo        string
	Type           Type
	RelatedID      int64
	MemberID       *int64
	MemberName     string
	TotalAmount    decimal.Decimal
	PayAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	Currency       string
	PayMethod      string
	Status         Status
	Source         string
	Remark         string
	CreatedAt      time.Time
	PaidAt         *time.Time
}

func Reconstruct(s Snapshot) *Order {
	return &Order{
		id:             s.ID,
		orderNo:        s.OrderNo,
		orderType:      s.Type,
		relatedID:      s.RelatedID,
		memberID:       s.MemberID,
		memberName:     s.MemberName,
		totalAmount:    s.TotalAmount,
		payAmount:      s.PayAmount,
		discountAmount: s.DiscountAmount,
		currency:       s.Currency,
		payMethod:      s.PayMethod,
		status:         s.Status,
		source:         s.Source,
		remark:         s.Remark,
		createdAt:      s.CreatedAt,
		paidAt:         s.PaidAt,
	}
}

func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:             o.id,
		OrderNo:        o.orderNo,
		Type:           o.orderType,
		RelatedID:      o.relatedID,
		MemberID:       o.memberID,
		MemberName:     o.memberName,
		TotalAmount:    o.totalAmount,
		PayAmount:      o.payAmount,
		DiscountAmount: o.discountAmount,
		Currency:       o.currency,
		PayMethod:      o.payMethod,
		Status:         o.status,
		Source:         o.source,
		Remark:         o.remark,
		CreatedAt:      o.createdAt,
		PaidAt:         o.paidAt,
	}
}

func (o *Order) ID() int64                       { return o.id }
func (o *Order) OrderNo() string                 { return o.orderNo }
func (o *Order) Type() Type                      { return o.orderType }
func (o *Order) RelatedID() int64                { return o.relatedID }
func (o *Order) MemberID() *int64                { return o.memberID }
func (o *Order) MemberName() string              { return o.memberName }
func (o *Order) TotalAmount() decimal.Decimal    { return o.totalAmount }
func (o *Order) PayAmount() decimal.Decimal      { return o.payAmount }
func (o *Order) DiscountAmount() decimal.Decimal { return o.discountAmount }
func (o *Order) Currency() string                { return o.currency }
func (o *Order) PayMethod() string               { return o.payMethod }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) Source() string                  { return o.source }
func (o *Order) Remark() string                  { return o.remark }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) PaidAt() *time.Time              { return o.paidAt }
