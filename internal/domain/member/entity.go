package member

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMemberInactive      = errors.New("member is not active")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNonPositiveAmount   = errors.New("amount must be positive")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Member balance is mutated only through Debit/Credit, which the balance ledger drives.
type Member struct {
	id      int64
	name    string
	balance decimal.Decimal
	status  Status
	level   string
}

func ReconstructMember(id int64, name string, balance decimal.Decimal, status Status, level string) *Member {
	return &Member{
		id:      id,
		name:    name,
		balance: balance,
		status:  status,
		level:   level,
	}
}

func (m *Member) IsActive() bool {
	return m.status == StatusActive
}

func (m *Member) EnsureActive() error {
	if !m.IsActive() {
		return ErrMemberInactive
	}
	return nil
}

func (m *Member) Debit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return m.balance, ErrNonPositiveAmount
	}
	if m.balance.LessThan(amount) {
		return m.balance, ErrInsufficientBalance
	}
	m.balance = m.balance.Sub(amount)
	return m.balance, nil
}

// Credit has no upper bound so that refunds always complete.
func (m *Member) Credit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return m.balance, ErrNonPositiveAmount
	}
	m.balance = m.balance.Add(amount)
	return m.balance, nil
}

func (m *Member) ID() int64                { return m.id }
func (m *Member) Name() string             { return m.name }
func (m *Member) Balance() decimal.Decimal { return m.balance }
func (m *Member) Status() Status           { return m.status }
func (m *Member) Level() string            { return m.level }
