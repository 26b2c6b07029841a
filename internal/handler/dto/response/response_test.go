//go:build unit

package response_test

import (
	"testing"
	"time"

	"gym-reservation-engine/internal/domain/pricing"
	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/handler/dto/response"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmpopts.EquateEmpty(),
}

var (
	slotStart = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	slotEnd   = slotStart.Add(2 * time.Hour)
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFromBooking(t *testing.T) {
	cardID := int64(31)
	balance := d("910")
	in := &commands.BookingResult{
		ReservationID: 11,
		OrderID:       21,
		OrderNo:       "GYM-C-20250310140000000",
		CourtName:     "Badminton 1",
		TimeRange:     "14:00-16:00",
		Start:         slotStart,
		End:           slotEnd,
		TotalAmount:   d("90"),
		BalanceAfter:  &balance,
		Quote: pricing.Quote{
			HourlyRate:     d("50"),
			Hours:          d("2"),
			BaseAmount:     d("100"),
			Discount:       pricing.Discount{Percent: d("90"), Source: pricing.SourceCard, CardID: &cardID},
			DiscountAmount: d("10"),
			Amount:         d("90"),
		},
	}

	got, err := response.FromBooking(in)
	require.NoError(t, err)

	want := &response.BookingResponse{
		ReservationID: 11,
		OrderID:       21,
		OrderNo:       "GYM-C-20250310140000000",
		CourtName:     "Badminton 1",
		TimeRange:     "14:00-16:00",
		Start:         slotStart,
		End:           slotEnd,
		TotalAmount:   d("90"),
		BalanceAfter:  &balance,
		Quote: response.QuoteResponse{
			HourlyRate:      d("50"),
			Hours:           d("2"),
			BaseAmount:      d("100"),
			DiscountPercent: d("90"),
			DiscountSource:  "card",
			DiscountCardID:  &cardID,
			DiscountAmount:  d("10"),
			Amount:          d("90"),
		},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("booking mismatch (-want +got):\n%s", diff)
	}
}

func TestFromStatusChange(t *testing.T) {
	t.Run("without refund", func(t *testing.T) {
		got, err := response.FromStatusChange(&commands.StatusChangeResult{ReservationID: 4, Status: reservation.StatusCompleted})
		require.NoError(t, err)

		want := &response.StatusChangeResponse{ReservationID: 4, Status: "completed"}
		if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
			t.Errorf("status change mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("walk-in cancel has no balance", func(t *testing.T) {
		got, err := response.FromStatusChange(&commands.StatusChangeResult{
			ReservationID: 4,
			Status:        reservation.StatusCancelled,
			Refund:        &commands.RefundResult{ReservationID: 4, RefundOrderID: 9, RefundOrderNo: "GYM-C-1", RefundAmount: d("75")},
		})
		require.NoError(t, err)

		want := &response.StatusChangeResponse{
			ReservationID: 4,
			Status:        "cancelled",
			Refund:        &response.RefundResponse{ReservationID: 4, RefundOrderID: 9, RefundOrderNo: "GYM-C-1", RefundAmount: d("75")},
		}
		if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
			t.Errorf("status change mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFromReservationViews(t *testing.T) {
	memberID := int64(7)
	name := "Chen Jing"
	created := slotStart.Add(-24 * time.Hour)
	views := []*queries.ReservationView{
		{
			ID: 1, CourtID: 2, CourtName: "Tennis", MemberID: &memberID, MemberName: &name,
			StartTime: slotStart, EndTime: slotEnd, TotalAmount: d("240"),
			Status: "booked", Origin: "member_self", CreatedAt: created,
			LatestOrder: &queries.OrderSummary{ID: 5, OrderNo: "GYM-C-2", Status: "paid", TotalAmount: d("240"), CreatedAt: created},
		},
		{
			ID: 2, CourtID: 2, CourtName: "Tennis",
			StartTime: slotEnd, EndTime: slotEnd.Add(time.Hour), TotalAmount: d("120"),
			Status: "booked", Origin: "admin", Note: "walk-in", CreatedAt: created,
		},
	}

	got, err := response.FromReservationViews(views)
	require.NoError(t, err)

	want := []*response.ReservationResponse{
		{
			ID: 1, CourtID: 2, CourtName: "Tennis", MemberID: &memberID, MemberName: &name,
			StartTime: slotStart, EndTime: slotEnd, TotalAmount: d("240"),
			Status: "booked", Origin: "member_self", CreatedAt: created,
			LatestOrder: &response.OrderSummaryResponse{ID: 5, OrderNo: "GYM-C-2", Status: "paid", TotalAmount: d("240"), CreatedAt: created},
		},
		{
			ID: 2, CourtID: 2, CourtName: "Tennis",
			StartTime: slotEnd, EndTime: slotEnd.Add(time.Hour), TotalAmount: d("120"),
			Status: "booked", Origin: "admin", Note: "walk-in", CreatedAt: created,
		},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("reservations mismatch (-want +got):\n%s", diff)
	}
}

func TestFromLedger_EmptyHistoryIsNotNull(t *testing.T) {
	got, err := response.FromLedger(&queries.MemberLedgerView{MemberID: 3, Name: "Zhao Min", Balance: d("40")})
	require.NoError(t, err)
	require.NotNil(t, got.Entries)
	require.Empty(t, got.Entries)
}
