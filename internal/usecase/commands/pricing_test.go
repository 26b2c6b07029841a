//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gym-reservation-engine/internal/domain/card"
	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/domain/pricing"
	"gym-reservation-engine/internal/pkg/errs"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/shared"
	"gym-reservation-engine/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goldLevels = `[{"code":"gold","name":"Gold","discount":"85"},{"code":"silver","name":"Silver","discount":"95","enabled":false}]`

func withGoldMember(s *memstore.Store) {
	s.AddMember(memstore.Member{ID: 7, Name: "Chen Jing", Balance: dec("1000"), Status: member.StatusActive, Level: "GOLD"})
}

func withCard(memberID, cardID int64, pct int32) func(*memstore.Store) {
	return func(s *memstore.Store) {
		s.AddCard(memstore.Card{ID: cardID, MemberID: memberID, Kind: card.KindPercentageDiscount, DiscountPercent: &pct,
			StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 30)})
	}
}

func TestQuote_Discounts(t *testing.T) {
	tests := []struct {
		name     string
		seed     []func(*memstore.Store)
		memberID *int64
		amount   string
		source   pricing.Source
	}{
		{
			name:     "walk-in pays list price",
			amount:   "100",
			source:   pricing.SourceNone,
		},
		{
			name:     "member without card or level",
			memberID: id(1),
			amount:   "100",
			source:   pricing.SourceNone,
		},
		{
			name: "tier discount from member level",
			seed: []func(*memstore.Store){
				withGoldMember,
				func(s *memstore.Store) { s.SetSetting(shared.SettingsGroupMember, shared.SettingsKeyMemberLevel, goldLevels) },
			},
			memberID: id(7),
			amount:   "85",
			source:   pricing.SourceTier,
		},
		{
			name: "card beats a weaker tier",
			seed: []func(*memstore.Store){
				withGoldMember,
				withCard(7, 1, 80),
				func(s *memstore.Store) { s.SetSetting(shared.SettingsGroupMember, shared.SettingsKeyMemberLevel, goldLevels) },
			},
			memberID: id(7),
			amount:   "80",
			source:   pricing.SourceCard,
		},
		{
			name:     "lowest of several cards",
			seed:     []func(*memstore.Store){withCard(1, 1, 95), withCard(1, 2, 88)},
			memberID: id(1),
			amount:   "88",
			source:   pricing.SourceCard,
		},
		{
			name: "expired card is ignored",
			seed: []func(*memstore.Store){func(s *memstore.Store) {
				pct := int32(50)
				s.AddCard(memstore.Card{ID: 1, MemberID: 1, Kind: card.KindPercentageDiscount, DiscountPercent: &pct,
					StartDate: now.AddDate(0, -2, 0), EndDate: now.AddDate(0, 0, -1)})
			}},
			memberID: id(1),
			amount:   "100",
			source:   pricing.SourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, tt.seed...)

			got, err := e.res.Quote(context.Background(), commands.QuoteInput{CourtID: 1, MemberID: tt.memberID, Start: at(14, 0), End: at(16, 0)})

			require.NoError(t, err)
			assert.True(t, got.Quote.Amount.Equal(dec(tt.amount)), "amount %s", got.Quote.Amount)
			assert.Equal(t, tt.source, got.Quote.Discount.Source)
			assert.True(t, got.Quote.BaseAmount.Equal(dec("100")))
			assert.Empty(t, e.store.Reservations())
			assert.Empty(t, e.store.Ledger())
		})
	}
}

func TestQuote_CardValidityFollowsGymCalendar(t *testing.T) {
	gymZone := time.FixedZone("CST", 8*3600)
	// 20:00 UTC on the 16th is already 04:00 on the 17th at the gym
	evening := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)
	from := time.Date(2026, 10, 17, 2, 0, 0, 0, time.UTC)

	cardBetween := func(start, end time.Time) func(*memstore.Store) {
		return func(s *memstore.Store) {
			pct := int32(90)
			s.AddCard(memstore.Card{ID: 1, MemberID: 1, Kind: card.KindPercentageDiscount, DiscountPercent: &pct,
				StartDate: start, EndDate: end})
		}
	}

	tests := []struct {
		name   string
		seed   func(*memstore.Store)
		amount string
		source pricing.Source
	}{
		{
			name:   "card that ended yesterday at the gym",
			seed:   cardBetween(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)),
			amount: "100",
			source: pricing.SourceNone,
		},
		{
			name:   "card that starts today at the gym",
			seed:   cardBetween(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)),
			amount: "90",
			source: pricing.SourceCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngineAt(t, evening, gymZone, tt.seed)

			got, err := e.res.Quote(context.Background(), commands.QuoteInput{CourtID: 1, MemberID: id(1), Start: from, End: from.Add(2 * time.Hour)})

			require.NoError(t, err)
			assert.True(t, got.Quote.Amount.Equal(dec(tt.amount)), "amount %s", got.Quote.Amount)
			assert.Equal(t, tt.source, got.Quote.Discount.Source)
		})
	}
}

func TestQuote_RejectsBadInput(t *testing.T) {
	e := newEngine(t)

	_, err := e.res.Quote(context.Background(), commands.QuoteInput{CourtID: 1, Start: at(16, 0), End: at(16, 0)})
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = e.res.Quote(context.Background(), commands.QuoteInput{CourtID: 9, Start: at(14, 0), End: at(15, 0)})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCreateReservation_DiscountDegradesToFullPrice(t *testing.T) {
	t.Run("card lookup fails", func(t *testing.T) {
		e := newEngine(t, withCard(1, 1, 50))
		e.store.FailOn(memstore.OpCardsList, errors.New("cards table unreachable"))

		result, err := e.book(id(1), at(14, 0), at(16, 0))

		require.NoError(t, err)
		assert.True(t, result.TotalAmount.Equal(dec("100")))
		assert.Equal(t, 1, e.recorder.degraded["cards"])
		assert.Len(t, e.store.Reservations(), 1)
		assert.Len(t, e.store.Orders(), 1)
	})

	t.Run("card lookup failure also drops the tier", func(t *testing.T) {
		e := newEngine(t, withGoldMember, withCard(7, 1, 80), func(s *memstore.Store) {
			s.SetSetting(shared.SettingsGroupMember, shared.SettingsKeyMemberLevel, goldLevels)
		})
		e.store.FailOn(memstore.OpCardsList, errors.New("cards table unreachable"))

		result, err := e.book(id(7), at(14, 0), at(16, 0))

		require.NoError(t, err)
		assert.True(t, result.TotalAmount.Equal(dec("100")))
		assert.Equal(t, pricing.SourceNone, result.Quote.Discount.Source)
		assert.Equal(t, 1, e.recorder.degraded["cards"])
	})

	t.Run("malformed tier table", func(t *testing.T) {
		e := newEngine(t, withGoldMember, func(s *memstore.Store) {
			s.SetSetting(shared.SettingsGroupMember, shared.SettingsKeyMemberLevel, `{"gold":`)
		})

		result, err := e.book(id(7), at(14, 0), at(16, 0))

		require.NoError(t, err)
		assert.True(t, result.TotalAmount.Equal(dec("100")))
		assert.Equal(t, 1, e.recorder.degraded["tier_table"])
	})

	t.Run("settings read fails", func(t *testing.T) {
		e := newEngine(t, withGoldMember, func(s *memstore.Store) {
			s.SetSetting(shared.SettingsGroupMember, shared.SettingsKeyMemberLevel, goldLevels)
		})
		e.store.FailOn(memstore.OpSettingsGet, errors.New("timeout"))

		result, err := e.book(id(7), at(14, 0), at(16, 0))

		require.NoError(t, err)
		assert.True(t, result.TotalAmount.Equal(dec("100")))
		assert.Equal(t, 1, e.recorder.degraded["tier_table"])
	})
}

func TestCachedTierDiscounts(t *testing.T) {
	e := newEngine(t, func(s *memstore.Store) {
		s.SetSetting(shared.SettingsGroupMember, shared.SettingsKeyMemberLevel, goldLevels)
	})
	ctx := context.Background()

	table, err := e.tiers.Table(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	_, err = e.tiers.Table(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, e.store.Calls(memstore.OpSettingsGet), "second read is served from cache")

	e.clock.Add(2 * time.Minute)
	_, err = e.tiers.Table(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, e.store.Calls(memstore.OpSettingsGet), "expired entry is reloaded")
}

func TestCachedTierDiscounts_MissingSettingIsEmpty(t *testing.T) {
	e := newEngine(t)

	table, err := e.tiers.Table(context.Background())

	require.NoError(t, err)
	assert.Zero(t, table.Len())
}

func TestImportMemberLevels(t *testing.T) {
	e := newEngine(t, withGoldMember)
	ctx := context.Background()

	before, err := e.res.Quote(ctx, commands.QuoteInput{CourtID: 1, MemberID: id(7), Start: at(14, 0), End: at(16, 0)})
	require.NoError(t, err)
	assert.True(t, before.Quote.Amount.Equal(dec("100")))

	err = e.settings.ImportMemberLevels(ctx, []pricing.Level{{Code: "gold", Name: "Gold", Discount: dec("70")}})
	require.NoError(t, err)

	after, err := e.res.Quote(ctx, commands.QuoteInput{CourtID: 1, MemberID: id(7), Start: at(14, 0), End: at(16, 0)})
	require.NoError(t, err)
	assert.True(t, after.Quote.Amount.Equal(dec("70")), "cached empty table must be dropped on import")
}

func TestImportMemberLevels_Validation(t *testing.T) {
	tests := []struct {
		name   string
		levels []pricing.Level
	}{
		{name: "unnamed level", levels: []pricing.Level{{Discount: dec("90")}}},
		{name: "negative discount", levels: []pricing.Level{{Code: "gold", Discount: dec("-5")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)

			err := e.settings.ImportMemberLevels(context.Background(), tt.levels)

			require.ErrorIs(t, err, errs.ErrValidation)
			assert.Zero(t, e.store.Calls(memstore.OpSettingsUpsert))
		})
	}
}
