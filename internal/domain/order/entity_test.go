//go:build unit

package order_test

import (
	"sync"
	"testing"
	"time"

	"gym-reservation-engine/internal/domain/order"
	"gym-reservation-engine/internal/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidOrder(t *testing.T) *order.Order {
	t.Helper()
	memberID := int64(7)
	o, err := order.NewPaidOrder(order.PaidOrderParams{
		OrderNo:        "GYM-C-20250310090000000",
		Type:           order.TypeCourt,
		RelatedID:      42,
		MemberID:       &memberID,
		MemberName:     "Li Lei",
		TotalAmount:    decimal.RequireFromString("70.00"),
		DiscountAmount: decimal.RequireFromString("30.00"),
		Currency:       "CNY",
		PayMethod:      "member_balance",
		Source:         order.SourceAdmin,
		Now:            time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	o.AssignID(11)
	return o
}

func TestRefundOrder(t *testing.T) {
	t.Run("mirrors the original with a negative amount", func(t *testing.T) {
		original := paidOrder(t)

		refund, err := order.NewRefundOrder(original, "GYM-R-20250310100000000", decimal.RequireFromString("70.00"), "", time.Now())
		require.NoError(t, err)

		assert.Equal(t, order.TypeRefund, refund.Type())
		assert.Equal(t, order.StatusRefunded, refund.Status())
		assert.Equal(t, order.SourceRefund, refund.Source())
		assert.Equal(t, int64(11), refund.RelatedID())
		assert.Equal(t, "refund of GYM-C-20250310090000000", refund.Remark())
		assert.True(t, refund.TotalAmount().Equal(decimal.RequireFromString("-70.00")))
		assert.True(t, refund.TotalAmount().Add(original.TotalAmount()).IsZero())
		assert.Nil(t, refund.PaidAt())
	})

	t.Run("refused once the original is refunded", func(t *testing.T) {
		original := paidOrder(t)
		require.NoError(t, original.MarkRefunded())

		_, err := order.NewRefundOrder(original, "GYM-R-1", decimal.NewFromInt(1), "", time.Now())
		require.ErrorIs(t, err, order.ErrNotRefundable)
		require.ErrorIs(t, original.MarkRefunded(), order.ErrNotRefundable)
	})
}

func TestNumberGenerator(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		ts := time.Date(2025, 3, 10, 9, 5, 7, 123_000_000, time.UTC)
		assert.Equal(t, "GYM-C-20250310090507123", order.Format("GYM", order.TypeCourt, ts))
		assert.Equal(t, "GYM-R-20250310090507123", order.Format("GYM", order.TypeRefund, ts))
	})

	t.Run("unique under a frozen clock", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
		gen := order.NewNumberGenerator("GYM", clk, time.UTC)

		const n = 200
		var (
			mu   sync.Mutex
			seen = make(map[string]struct{}, n)
			wg   sync.WaitGroup
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				no := gen.Next(order.TypeCourt)
				mu.Lock()
				seen[no] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Len(t, seen, n)
	})
}
