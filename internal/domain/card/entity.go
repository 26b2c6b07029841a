package card

import (
	"time"
)

type Kind string

const (
	KindVisitCount         Kind = "visit_count"
	KindPercentageDiscount Kind = "percentage_discount"
	KindMonthly            Kind = "monthly"
	KindAnnual             Kind = "annual"
)

// NoDiscount is the stored percent meaning "pay in full".
const NoDiscount = 100

type MembershipCard struct {
	id              int64
	memberID        int64
	kind            Kind
	remainingVisits *int32
	discountPercent *int32
	startDate       time.Time
	endDate         time.Time
}

func ReconstructCard(id, memberID int64, kind Kind, remainingVisits, discountPercent *int32, startDate, endDate time.Time) *MembershipCard {
	return &MembershipCard{
		id:              id,
		memberID:        memberID,
		kind:            kind,
		remainingVisits: remainingVisits,
		discountPercent: discountPercent,
		startDate:       startDate,
		endDate:         endDate,
	}
}

// IsActiveOn compares calendar dates in the location of day, inclusive at both ends.
func (c *MembershipCard) IsActiveOn(day time.Time) bool {
	d := dateOf(day, day.Location())
	return !d.Before(dateOf(c.startDate, day.Location())) && !d.After(dateOf(c.endDate, day.Location()))
}

// EffectivePercent returns the discount only when it actually reduces the price.
func (c *MembershipCard) EffectivePercent() (int32, bool) {
	if c.discountPercent == nil {
		return 0, false
	}
	p := *c.discountPercent
	if p <= 0 || p >= NoDiscount {
		return 0, false
	}
	return p, true
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (c *MembershipCard) ID() int64               { return c.id }
func (c *MembershipCard) MemberID() int64         { return c.memberID }
func (c *MembershipCard) Kind() Kind              { return c.kind }
func (c *MembershipCard) RemainingVisits() *int32 { return c.remainingVisits }
func (c *MembershipCard) DiscountPercent() *int32 { return c.discountPercent }
func (c *MembershipCard) StartDate() time.Time    { return c.startDate }
func (c *MembershipCard) EndDate() time.Time      { return c.endDate }
