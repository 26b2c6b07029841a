//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"gym-reservation-engine/internal/domain/card"
	"gym-reservation-engine/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func pct(v int32) *int32 { return &v }

func newCard(id int64, percent *int32, start, end time.Time) *card.MembershipCard {
	return card.ReconstructCard(id, 1, card.KindPercentageDiscount, nil, percent, start, end)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		duration time.Duration
		discount pricing.Discount
		amount   string
		base     string
		errIs    error
	}{
		{
			name:     "two hours without discount",
			rate:     "50",
			duration: 2 * time.Hour,
			discount: pricing.NoDiscount(),
			amount:   "100",
			base:     "100",
		},
		{
			name:     "90 percent card on two hours",
			rate:     "50",
			duration: 2 * time.Hour,
			discount: pricing.Discount{Percent: decimal.NewFromInt(90), Source: pricing.SourceCard},
			amount:   "90",
			base:     "100",
		},
		{
			name:     "half away from zero on the final amount",
			rate:     "33.33",
			duration: 90 * time.Minute,
			discount: pricing.Discount{Percent: decimal.NewFromInt(85), Source: pricing.SourceTier},
			// 33.33 * 1.5 * 0.85 = 42.495750
			amount: "42.5",
			base:   "50",
		},
		{
			name:     "rounding is applied once",
			rate:     "1.01",
			duration: 30 * time.Minute,
			discount: pricing.Discount{Percent: decimal.NewFromInt(90), Source: pricing.SourceTier},
			// 0.505 * 0.9 = 0.4545; rounding the base first would give 0.51 * 0.9 -> 0.46
			amount: "0.45",
			base:   "0.51",
		},
		{
			name:     "zero rate is rejected",
			rate:     "0",
			duration: time.Hour,
			discount: pricing.NoDiscount(),
			errIs:    pricing.ErrRateNotPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := pricing.Compute(decimal.RequireFromString(tt.rate), tt.duration, tt.discount)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, q.Amount.Equal(decimal.RequireFromString(tt.amount)), "amount %s", q.Amount)
			assert.True(t, q.BaseAmount.Equal(decimal.RequireFromString(tt.base)), "base %s", q.BaseAmount)
			assert.True(t, q.DiscountAmount.Equal(q.BaseAmount.Sub(q.Amount)))
		})
	}
}

func TestBestOf(t *testing.T) {
	tier, err := pricing.ParseLevels(`[
		{"code":"vip","name":"VIP Member","discount":90,"enabled":true},
		{"code":"gold","name":"Gold","discount":85,"enabled":false},
		{"code":"normal","name":"Normal","discount":100}
	]`)
	require.NoError(t, err)

	past := today.AddDate(0, -1, 0)
	future := today.AddDate(0, 1, 0)

	tests := []struct {
		name    string
		cards   []*card.MembershipCard
		level   string
		source  pricing.Source
		percent int64
	}{
		{
			name:    "lowest active card wins",
			cards:   []*card.MembershipCard{newCard(1, pct(90), past, future), newCard(2, pct(80), past, future)},
			level:   "vip",
			source:  pricing.SourceCard,
			percent: 80,
		},
		{
			name:    "expired card is ignored and tier applies",
			cards:   []*card.MembershipCard{newCard(1, pct(50), past, today.AddDate(0, 0, -1))},
			level:   "VIP",
			source:  pricing.SourceTier,
			percent: 90,
		},
		{
			name:    "card ending today is still active",
			cards:   []*card.MembershipCard{newCard(1, pct(70), past, today)},
			source:  pricing.SourceCard,
			percent: 70,
		},
		{
			name:    "card of 100 percent is not a discount",
			cards:   []*card.MembershipCard{newCard(1, pct(100), past, future), newCard(2, nil, past, future)},
			level:   "VIP Member",
			source:  pricing.SourceTier,
			percent: 90,
		},
		{
			name:    "disabled tier",
			level:   "gold",
			source:  pricing.SourceNone,
			percent: 100,
		},
		{
			name:    "full price tier",
			level:   "normal",
			source:  pricing.SourceNone,
			percent: 100,
		},
		{
			name:    "unknown level",
			level:   "platinum",
			source:  pricing.SourceNone,
			percent: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := pricing.BestOf(tt.cards, today, tier, tt.level)

			assert.Equal(t, tt.source, d.Source)
			assert.True(t, d.Percent.Equal(decimal.NewFromInt(tt.percent)), "percent %s", d.Percent)
		})
	}
}

func TestParseLevels(t *testing.T) {
	t.Run("empty value is an empty table", func(t *testing.T) {
		table, err := pricing.ParseLevels("  ")
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := pricing.ParseLevels(`{"code":"vip"}`)
		require.ErrorIs(t, err, pricing.ErrMalformedLevels)
	})
}
