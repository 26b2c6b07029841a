package commands

import (
	"context"
	"log/slog"
	"time"

	"gym-reservation-engine/internal/domain/card"
	"gym-reservation-engine/internal/domain/court"
	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/domain/pricing"
	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/pkg/cache"
	"gym-reservation-engine/internal/pkg/clock"
	"gym-reservation-engine/internal/pkg/errs"
	"gym-reservation-engine/internal/usecase/shared"
)

const tierCacheKey = shared.SettingsGroupMember + "/" + shared.SettingsKeyMemberLevel

// TierDiscounts serves the member level table from a cache with an explicit invalidation hook.
type TierDiscounts interface {
	Table(ctx context.Context) (pricing.TierTable, error)
	Invalidate()
}

type CachedTierDiscounts struct {
	uow    shared.UnitOfWork
	cache  *cache.TTL[string, pricing.TierTable]
	logger *slog.Logger
}

func NewCachedTierDiscounts(uow shared.UnitOfWork, c *cache.TTL[string, pricing.TierTable], logger *slog.Logger) *CachedTierDiscounts {
	return &CachedTierDiscounts{uow: uow, cache: c, logger: logger}
}

// Table returns the cached table or loads it. A missing setting is an empty table;
// a malformed one is an error and is not cached.
func (t *CachedTierDiscounts) Table(ctx context.Context) (pricing.TierTable, error) {
	if table, ok := t.cache.Get(tierCacheKey); ok {
		return table, nil
	}

	var raw string
	err := t.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Settings().Get(ctx, shared.SettingsGroupMember, shared.SettingsKeyMemberLevel)
		if err != nil {
			return err
		}
		raw = v
		return nil
	})
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return pricing.TierTable{}, errs.Wrap(err, "load member levels")
	}

	table, err := pricing.ParseLevels(raw)
	if err != nil {
		return pricing.TierTable{}, err
	}
	t.cache.Set(tierCacheKey, table)
	return table, nil
}

func (t *CachedTierDiscounts) Invalidate() {
	t.cache.Invalidate(tierCacheKey)
	t.logger.Info("member level cache invalidated")
}

// TierSnapshot is the tier table fetched before the booking transaction opens.
type TierSnapshot struct {
	Table pricing.TierTable
	Err   error
}

type PriceResolver struct {
	clock    clock.Clock
	loc      *time.Location
	recorder shared.Recorder
	logger   *slog.Logger
}

// NewPriceResolver judges card validity by the calendar date in loc, the gym's wall clock.
func NewPriceResolver(clk clock.Clock, loc *time.Location, recorder shared.Recorder, logger *slog.Logger) *PriceResolver {
	return &PriceResolver{clock: clk, loc: loc, recorder: recorder, logger: logger}
}

// Quote prices slot on c for m, which may be nil for walk-in bookings.
func (p *PriceResolver) Quote(
	ctx context.Context,
	tx shared.Tx,
	c *court.Court,
	slot reservation.TimeSlot,
	m *member.Member,
	tier TierSnapshot,
) (pricing.Quote, error) {
	if err := c.EnsureRateConfigured(); err != nil {
		return pricing.Quote{}, errs.Mark(err, errs.ErrValidation)
	}

	d := p.ResolveDiscount(ctx, tx, m, tier)

	q, err := pricing.Compute(c.HourlyRate(), slot.Duration(), d)
	if err != nil {
		return pricing.Quote{}, errs.Mark(err, errs.ErrValidation)
	}
	return q, nil
}

// ResolveDiscount never fails. A failed card lookup prices without any discount,
// since the best discount can no longer be known; a broken tier table only drops the tier.
func (p *PriceResolver) ResolveDiscount(ctx context.Context, tx shared.Tx, m *member.Member, tier TierSnapshot) pricing.Discount {
	if m == nil {
		return pricing.NoDiscount()
	}

	var cards []*card.MembershipCard
	err := tx.Savepoint(ctx, func(ctx context.Context, sp shared.Tx) error {
		list, err := sp.Cards().ListByMember(ctx, m.ID())
		if err != nil {
			return err
		}
		cards = list
		return nil
	})
	if err != nil {
		p.degraded(ctx, "cards", m.ID(), err)
		return pricing.NoDiscount()
	}

	table := tier.Table
	if tier.Err != nil {
		p.degraded(ctx, "tier_table", m.ID(), tier.Err)
		table = pricing.TierTable{}
	}

	return pricing.BestOf(cards, p.clock.Now().In(p.loc), table, m.Level())
}

func (p *PriceResolver) degraded(ctx context.Context, stage string, memberID int64, err error) {
	p.recorder.DiscountDegraded(stage)
	p.logger.WarnContext(ctx, "discount lookup failed, pricing without discount",
		slog.String("stage", stage),
		slog.Int64("member_id", memberID),
		slog.String("error", err.Error()))
}
