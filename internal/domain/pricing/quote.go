package pricing

import (
	"errors"
	"time"

	"gym-reservation-engine/internal/domain/card"

	"github.com/shopspring/decimal"
)

var ErrRateNotPositive = errors.New("hourly rate must be positive")

var (
	hundred        = decimal.NewFromInt(100)
	secondsPerHour = decimal.NewFromInt(3600)
)

type Source string

const (
	SourceNone Source = "none"
	SourceCard Source = "card"
	SourceTier Source = "tier"
)

// Discount is the percent of the base price the member pays.
type Discount struct {
	Percent decimal.Decimal
	Source  Source
	CardID  *int64
}

func NoDiscount() Discount {
	return Discount{Percent: hundred, Source: SourceNone}
}

func (d Discount) Applies() bool {
	return d.Source != SourceNone
}

type Quote struct {
	HourlyRate     decimal.Decimal
	Hours          decimal.Decimal
	BaseAmount     decimal.Decimal
	Discount       Discount
	Amount         decimal.Decimal
	DiscountAmount decimal.Decimal
}

// BestOf picks the lowest reducing card percent, then the tier percent, then none.
// Discounts never stack.
func BestOf(cards []*card.MembershipCard, today time.Time, tier TierTable, level string) Discount {
	var best *card.MembershipCard
	var bestPct int32
	for _, c := range cards {
		if !c.IsActiveOn(today) {
			continue
		}
		pct, ok := c.EffectivePercent()
		if !ok {
			continue
		}
		if best == nil || pct < bestPct {
			best, bestPct = c, pct
		}
	}
	if best != nil {
		id := best.ID()
		return Discount{Percent: decimal.NewFromInt32(bestPct), Source: SourceCard, CardID: &id}
	}

	if pct, ok := tier.DiscountFor(level); ok {
		return Discount{Percent: pct, Source: SourceTier}
	}
	return NoDiscount()
}

// Compute prices a slot of the given length. The amount is rounded to cents once,
// half away from zero, on the full product rate * seconds * percent.
func Compute(rate decimal.Decimal, duration time.Duration, d Discount) (Quote, error) {
	if !rate.IsPositive() {
		return Quote{}, ErrRateNotPositive
	}
	secs := decimal.NewFromInt(int64(duration / time.Second))

	raw := rate.Mul(secs).Div(secondsPerHour)
	base := raw.Round(2)
	amount := base
	if d.Applies() {
		amount = raw.Mul(d.Percent).Div(hundred).Round(2)
	}

	return Quote{
		HourlyRate:     rate,
		Hours:          secs.DivRound(secondsPerHour, 6),
		BaseAmount:     base,
		Discount:       d,
		Amount:         amount,
		DiscountAmount: base.Sub(amount),
	}, nil
}
