package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors for the alert pipeline and the
// digest batch job.
type Metrics struct {
	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error}
	NWSRequests     *prometheus.CounterVec // labels: endpoint={points,alerts}, outcome={success,error}

	DigestRuns        prometheus.Counter
	DigestSubscribers *prometheus.CounterVec // labels: outcome={sent,failed}
	SendDuration      prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frostwatch",
			Name:      "geocode_requests_total",
			Help:      "Total ZIP geocoding requests by outcome.",
		}, []string{"outcome"}),
		NWSRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frostwatch",
			Name:      "nws_requests_total",
			Help:      "Total NWS API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		DigestRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frostwatch",
			Name:      "digest_runs_total",
			Help:      "Total digest batch runs started.",
		}),
		DigestSubscribers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frostwatch",
			Name:      "digest_subscribers_total",
			Help:      "Subscribers processed per outcome across all runs.",
		}, []string{"outcome"}),
		SendDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "frostwatch",
			Name:      "send_duration_seconds",
			Help:      "Duration of one email send attempt.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}

	reg.MustRegister(
		m.GeocodeRequests,
		m.NWSRequests,
		m.DigestRuns,
		m.DigestSubscribers,
		m.SendDuration,
	)
	return m
}
