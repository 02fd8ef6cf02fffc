package repository

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts every store call by entity and operation. With the lazy
// per-field resolution strategy a nested query fans out into one call per
// parent row, and these counters are the way to see that fan-out.
type Metrics struct {
	StoreCalls *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StoreCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "store_calls_total",
			Help: "SQL store calls by entity and operation.",
		}, []string{"entity", "op"}),
	}
	if reg != nil {
		reg.MustRegister(m.StoreCalls)
	}
	return m
}

func (m *Metrics) observe(entity, op string) {
	if m == nil {
		return
	}
	m.StoreCalls.WithLabelValues(entity, op).Inc()
}
