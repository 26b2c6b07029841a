//go:build unit

package member_test

import (
	"testing"

	"gym-reservation-engine/internal/domain/member"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberBalance(t *testing.T) {
	tests := []struct {
		name    string
		op      func(m *member.Member) (decimal.Decimal, error)
		balance string
		errIs   error
	}{
		{
			name:    "debit within balance",
			op:      func(m *member.Member) (decimal.Decimal, error) { return m.Debit(decimal.NewFromInt(100)) },
			balance: "900",
		},
		{
			name:    "debit of the whole balance",
			op:      func(m *member.Member) (decimal.Decimal, error) { return m.Debit(decimal.NewFromInt(1000)) },
			balance: "0",
		},
		{
			name:    "debit beyond balance",
			op:      func(m *member.Member) (decimal.Decimal, error) { return m.Debit(decimal.RequireFromString("1000.01")) },
			balance: "1000",
			errIs:   member.ErrInsufficientBalance,
		},
		{
			name:    "zero debit",
			op:      func(m *member.Member) (decimal.Decimal, error) { return m.Debit(decimal.Zero) },
			balance: "1000",
			errIs:   member.ErrNonPositiveAmount,
		},
		{
			name:    "credit",
			op:      func(m *member.Member) (decimal.Decimal, error) { return m.Credit(decimal.RequireFromString("0.01")) },
			balance: "1000.01",
		},
		{
			name:    "negative credit",
			op:      func(m *member.Member) (decimal.Decimal, error) { return m.Credit(decimal.NewFromInt(-5)) },
			balance: "1000",
			errIs:   member.ErrNonPositiveAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := member.ReconstructMember(1, "Li Lei", decimal.NewFromInt(1000), member.StatusActive, "vip")

			got, err := tt.op(m)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.True(t, got.Equal(decimal.RequireFromString(tt.balance)))
			assert.True(t, m.Balance().Equal(decimal.RequireFromString(tt.balance)))
		})
	}

	t.Run("suspended member", func(t *testing.T) {
		m := member.ReconstructMember(1, "Han Meimei", decimal.Zero, member.StatusSuspended, "")
		require.ErrorIs(t, m.EnsureActive(), member.ErrMemberInactive)
	})
}
