//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"gym-reservation-engine/internal/domain/court"
	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/domain/order"
	"gym-reservation-engine/internal/domain/pricing"
	"gym-reservation-engine/internal/pkg/cache"
	"gym-reservation-engine/internal/pkg/clock"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/shared"
	"gym-reservation-engine/tests/common/memstore"

	"github.com/shopspring/decimal"
)

// 2025-03-10 09:00 local; bookings in tests are later the same day.
var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func id(v int64) *int64 {
	return &v
}

type spyPublisher struct {
	mu     sync.Mutex
	events []shared.Event
	err    error
}

func (p *spyPublisher) Publish(_ context.Context, ev shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *spyPublisher) Kinds() []shared.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	kinds := make([]shared.EventKind, len(p.events))
	for i, ev := range p.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

type spyRecorder struct {
	shared.NopRecorder
	mu       sync.Mutex
	degraded map[string]int
	outcomes map[string]int
}

func newSpyRecorder() *spyRecorder {
	return &spyRecorder{degraded: map[string]int{}, outcomes: map[string]int{}}
}

func (r *spyRecorder) DiscountDegraded(stage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.degraded[stage]++
}

func (r *spyRecorder) BookingAttempt(_, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes[outcome]++
}

type engine struct {
	store     *memstore.Store
	clock     *clock.MockClock
	publisher *spyPublisher
	recorder  *spyRecorder
	tiers     *commands.CachedTierDiscounts
	res       commands.ReservationCommands
	members   commands.MemberCommands
	settings  commands.SettingsCommands
}

// newEngine seeds court 1 (¥50/h) and member 1 (¥1000, no level).
func newEngine(t *testing.T, seed ...func(*memstore.Store)) *engine {
	t.Helper()
	return newEngineAt(t, now, time.UTC, seed...)
}

// newEngineAt runs the engine with its clock at start and its wall clock in loc.
func newEngineAt(t *testing.T, start time.Time, loc *time.Location, seed ...func(*memstore.Store)) *engine {
	t.Helper()
	store := memstore.New()
	store.AddCourt(memstore.Court{ID: 1, Name: "Court 1", Category: "badminton", HourlyRate: dec("50"), Status: court.StatusAvailable})
	store.AddMember(memstore.Member{ID: 1, Name: "Li Lei", Balance: dec("1000"), Status: member.StatusActive})
	for _, s := range seed {
		s(store)
	}

	clk := clock.NewMockClock(start)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := &spyPublisher{}
	recorder := newSpyRecorder()

	tiers := commands.NewCachedTierDiscounts(store, cache.NewTTL[string, pricing.TierTable](time.Minute, clk), logger)
	ledger := commands.NewBalanceLedger(clk)
	components := commands.Components{
		Availability: commands.NewAvailabilityChecker(),
		Prices:       commands.NewPriceResolver(clk, loc, recorder, logger),
		Ledger:       ledger,
		Orders:       commands.NewOrderRecorder(order.NewNumberGenerator("GYM", clk, loc), clk, "CNY"),
	}

	return &engine{
		store:     store,
		clock:     clk,
		publisher: publisher,
		recorder:  recorder,
		tiers:     tiers,
		res:       commands.NewReservationCommands(store, components, tiers, publisher, recorder, clk, "member_balance", logger),
		members:   commands.NewMemberCommands(store, ledger, publisher, clk, logger),
		settings:  commands.NewSettingsCommands(store, tiers, logger),
	}
}

func (e *engine) book(memberID *int64, from, to time.Time) (*commands.BookingResult, error) {
	return e.res.Create(context.Background(), commands.CreateReservationInput{
		CourtID:  1,
		MemberID: memberID,
		Start:    from,
		End:      to,
		Origin:   "admin",
	})
}

// conserved checks initial + topups - charges + refunds == balance for member id.
func conserved(e *engine, memberID int64, initial decimal.Decimal) bool {
	sum := initial
	for _, entry := range e.store.Ledger() {
		if entry.MemberID == memberID {
			sum = sum.Add(entry.Amount)
		}
	}
	return sum.Equal(e.store.Member(memberID).Balance)
}
