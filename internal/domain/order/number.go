package order

import (
	"strings"
	"sync"
	"time"

	"gym-reservation-engine/internal/pkg/clock"
)

const numberLayout = "20060102150405.000"

// NumberGenerator mints PREFIX-T-yyyyMMddHHmmssfff numbers.
// Timestamps are strictly increasing per process so two orders minted in the
// same millisecond do not collide on the unique index.
type NumberGenerator struct {
	prefix string
	clock  clock.Clock
	loc    *time.Location

	mu   sync.Mutex
	last time.Time
}

func NewNumberGenerator(prefix string, clk clock.Clock, loc *time.Location) *NumberGenerator {
	if loc == nil {
		loc = time.Local
	}
	return &NumberGenerator{prefix: prefix, clock: clk, loc: loc}
}

func (g *NumberGenerator) Next(t Type) string {
	g.mu.Lock()
	ts := g.clock.Now().In(g.loc).Truncate(time.Millisecond)
	if !ts.After(g.last) {
		ts = g.last.Add(time.Millisecond)
	}
	g.last = ts
	g.mu.Unlock()

	return Format(g.prefix, t, ts)
}

func Format(prefix string, t Type, ts time.Time) string {
	stamp := strings.Replace(ts.Format(numberLayout), ".", "", 1)
	return prefix + "-" + t.Code() + "-" + stamp
}
