//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"gym-reservation-engine/internal/domain/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	tests := []struct {
		name      string
		entryType ledger.EntryType
		magnitude string
		want      string
		errIs     error
	}{
		{name: "charge is negative", entryType: ledger.EntryCharge, magnitude: "100", want: "-100"},
		{name: "refund is positive", entryType: ledger.EntryRefund, magnitude: "100", want: "100"},
		{name: "topup ignores input sign", entryType: ledger.EntryTopUp, magnitude: "-20.5", want: "20.5"},
		{name: "unknown type", entryType: "bonus", magnitude: "1", errIs: ledger.ErrInvalidEntryType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ledger.NewEntry(1, tt.entryType, decimal.RequireFromString(tt.magnitude), decimal.Zero, "test", time.Now())

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, e.Amount().Equal(decimal.RequireFromString(tt.want)))
		})
	}
}
