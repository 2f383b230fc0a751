package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "market"

// Metrics holds the collectors exposed on /metrics. A nil *Metrics records
// nothing.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	ReservationsCreated prometheus.Counter
	ClaimsRejected      prometheus.Counter
	PaymentsSettled     prometheus.Counter
	OverdueMarked       prometheus.Counter
	IncidentsReported   *prometheus.CounterVec
	StandTransitions    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"method", "route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ReservationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_created_total",
			Help:      "Reservations accepted.",
		}),
		ClaimsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_claims_rejected_total",
			Help:      "Reservations refused because the stand was no longer available.",
		}),
		PaymentsSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_settled_total",
			Help:      "Reservations moved to PAID.",
		}),
		OverdueMarked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_overdue_total",
			Help:      "Reservations flagged OVERDUE by the sweep.",
		}),
		IncidentsReported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incidents_reported_total",
			Help:      "Incidents reported by type.",
		}, []string{"type"}),
		StandTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stand_status_transitions_total",
			Help:      "Manual stand status changes by target status.",
		}, []string{"status"}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.ReservationsCreated,
		m.ClaimsRejected,
		m.PaymentsSettled,
		m.OverdueMarked,
		m.IncidentsReported,
		m.StandTransitions,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

func (m *Metrics) ReservationCreated() {
	if m == nil {
		return
	}
	m.ReservationsCreated.Inc()
}

func (m *Metrics) ClaimRejected() {
	if m == nil {
		return
	}
	m.ClaimsRejected.Inc()
}

func (m *Metrics) PaymentSettled() {
	if m == nil {
		return
	}
	m.PaymentsSettled.Inc()
}

func (m *Metrics) Overdue(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.OverdueMarked.Add(float64(n))
}

func (m *Metrics) IncidentReported(typ string) {
	if m == nil {
		return
	}
	m.IncidentsReported.WithLabelValues(typ).Inc()
}

func (m *Metrics) StandTransition(status string) {
	if m == nil {
		return
	}
	m.StandTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
