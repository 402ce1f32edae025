package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the site's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	FilterApplications *prometheus.CounterVec
	VisibleCards       *prometheus.GaugeVec
	DetailLookups      *prometheus.CounterVec
	Enquiries          *prometheus.CounterVec
	SessionFailures    prometheus.Counter
}

// NewMetrics registers the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FilterApplications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "securiwise",
			Name:      "filter_applications_total",
			Help:      "Filter selections applied, by catalog group.",
		}, []string{"group"}),
		VisibleCards: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "securiwise",
			Name:      "filter_visible_cards",
			Help:      "Cards left visible by the most recent filter application, by catalog group.",
		}, []string{"group"}),
		DetailLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "securiwise",
			Name:      "detail_lookups_total",
			Help:      "Detail overlay lookups, by outcome (hit, miss, close).",
		}, []string{"outcome"}),
		Enquiries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "securiwise",
			Name:      "enquiries_total",
			Help:      "Enquiry drafts composed, by form.",
		}, []string{"form"}),
		SessionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "securiwise",
			Name:      "session_encode_failures_total",
			Help:      "Session cookies that could not be encoded and were not written.",
		}),
	}
	m.registry.MustRegister(
		m.FilterApplications,
		m.VisibleCards,
		m.DetailLookups,
		m.Enquiries,
		m.SessionFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
