package limiter

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes throttle activity for abuse monitoring. Purely
// observational, never part of the admission decision.
type Metrics struct {
	checks     *prometheus.CounterVec
	rejections *prometheus.CounterVec
	sweeps     prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatapi_ratelimit_checks_total",
				Help: "Total number of rate limit checks performed",
			},
			[]string{"policy", "result"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatapi_ratelimit_rejections_total",
				Help: "Total number of requests rejected by a throttle policy",
			},
			[]string{"policy", "route_class"},
		),
		sweeps: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "chatapi_ratelimit_swept_entries_total",
				Help: "Total number of idle limiter entries removed by the sweeper",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.checks, m.rejections, m.sweeps)
	}

	return m
}

func (m *Metrics) ObserveCheck(policy string, allowed bool) {
	if m == nil {
		return
	}
	result := "allowed"
	if !allowed {
		result = "rejected"
	}
	m.checks.WithLabelValues(policy, result).Inc()
}

func (m *Metrics) ObserveRejection(policy string, routeClass RouteClass) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(policy, string(routeClass)).Inc()
}

func (m *Metrics) ObserveSweep(removed int) {
	if m == nil {
		return
	}
	m.sweeps.Add(float64(removed))
}
