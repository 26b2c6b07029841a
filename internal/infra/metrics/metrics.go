package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Metrics owns its registry so several app instances can live in one process (tests).
type Metrics struct {
	registry         *prometheus.Registry
	bookings         *prometheus.CounterVec
	cancellations    *prometheus.CounterVec
	discountDegraded *prometheus.CounterVec
	chargedAmount    prometheus.Histogram
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gym",
			Name:      "booking_attempts_total",
			Help:      "Booking attempts by origin and outcome.",
		}, []string{"origin", "outcome"}),
		cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gym",
			Name:      "cancel_attempts_total",
			Help:      "Cancellation attempts by outcome.",
		}, []string{"outcome"}),
		discountDegraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gym",
			Name:      "discount_degraded_total",
			Help:      "Discount lookups that fell back to full price.",
		}, []string{"stage"}),
		chargedAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gym",
			Name:      "booking_amount",
			Help:      "Charged booking amounts.",
			Buckets:   []float64{0, 20, 50, 100, 200, 500, 1000},
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gym",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gym",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.bookings, m.cancellations, m.discountDegraded, m.chargedAmount,
		m.httpRequests, m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) BookingAttempt(origin, outcome string) {
	m.bookings.WithLabelValues(origin, outcome).Inc()
}

func (m *Metrics) CancelAttempt(outcome string) {
	m.cancellations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) DiscountDegraded(stage string) {
	m.discountDegraded.WithLabelValues(stage).Inc()
}

func (m *Metrics) ChargedAmount(amount decimal.Decimal) {
	m.chargedAmount.Observe(amount.InexactFloat64())
}

func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
