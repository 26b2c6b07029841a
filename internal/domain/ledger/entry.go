package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidEntryType = errors.New("invalid ledger entry type")

type EntryType string

const (
	EntryTopUp  EntryType = "topup"
	EntryCharge EntryType = "charge"
	EntryRefund EntryType = "refund"
)

func (t EntryType) String() string {
	return string(t)
}

// Sign is -1 for money leaving the member and +1 otherwise.
func (t EntryType) Sign() int64 {
	if t == EntryCharge {
		return -1
	}
	return 1
}

func (t EntryType) IsValid() bool {
	switch t {
	case EntryTopUp, EntryCharge, EntryRefund:
		return true
	default:
		return false
	}
}

// Entry is append-only; balanceAfter must equal the member balance written in the same transaction.
type Entry struct {
	id           int64
	memberID     int64
	entryType    EntryType
	amount       decimal.Decimal
	balanceAfter decimal.Decimal
	reason       string
	createdAt    time.Time
}

// NewEntry takes an unsigned magnitude and applies the type's sign.
func NewEntry(memberID int64, t EntryType, magnitude, balanceAfter decimal.Decimal, reason string, now time.Time) (*Entry, error) {
	if !t.IsValid() {
		return nil, ErrInvalidEntryType
	}
	return &Entry{
		memberID:     memberID,
		entryType:    t,
		amount:       magnitude.Abs().Mul(decimal.NewFromInt(t.Sign())),
		balanceAfter: balanceAfter,
		reason:       reason,
		createdAt:    now,
	}, nil
}

func ReconstructEntry(id, memberID int64, t EntryType, amount, balanceAfter decimal.Decimal, reason string, createdAt time.Time) *Entry {
	return &Entry{
		id:           id,
		memberID:     memberID,
		entryType:    t,
		amount:       amount,
		balanceAfter: balanceAfter,
		reason:       reason,
		createdAt:    createdAt,
	}
}

func (e *Entry) ID() int64                     { return e.id }
func (e *Entry) MemberID() int64               { return e.memberID }
func (e *Entry) Type() EntryType               { return e.entryType }
func (e *Entry) Amount() decimal.Decimal       { return e.amount }
func (e *Entry) BalanceAfter() decimal.Decimal { return e.balanceAfter }
func (e *Entry) Reason() string                { return e.reason }
func (e *Entry) CreatedAt() time.Time          { return e.createdAt }
