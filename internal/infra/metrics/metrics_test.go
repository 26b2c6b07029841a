//go:build unit

package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue sums the samples of family whose labels include want.
func counterValue(t *testing.T, m *Metrics, family string, want map[string]string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var total float64
	for _, f := range families {
		if f.GetName() != family {
			continue
		}
	metric:
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			for k, v := range want {
				if labels[k] != v {
					continue metric
				}
			}
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func TestMetrics(t *testing.T) {
	m := New()

	m.BookingAttempt("admin", "ok")
	m.BookingAttempt("admin", "ok")
	m.BookingAttempt("agent", "conflict")
	m.DiscountDegraded("cards")
	m.ChargedAmount(decimal.RequireFromString("90.00"))

	assert.Equal(t, 2.0, counterValue(t, m, "gym_booking_attempts_total", map[string]string{"origin": "admin", "outcome": "ok"}))
	assert.Equal(t, 1.0, counterValue(t, m, "gym_booking_attempts_total", map[string]string{"origin": "agent"}))
	assert.Equal(t, 1.0, counterValue(t, m, "gym_discount_degraded_total", map[string]string{"stage": "cards"}))

	// separate instances do not share a registry
	other := New()
	assert.Equal(t, 0.0, counterValue(t, other, "gym_booking_attempts_total", nil))
}
