package slottable

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	events *prometheus.CounterVec
	errors *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slottable",
			Name:      "events_total",
			Help:      "Table notifications emitted, by table and event kind.",
		}, []string{"table", "event"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slottable",
			Name:      "event_errors_total",
			Help:      "Click requests that failed to decode or were rejected by a listener.",
		}, []string{"table"}),
	}
	if reg != nil {
		reg.MustRegister(m.events, m.errors)
	}
	return m
}

func (m *metrics) observe(table string, kind EventKind, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.errors.WithLabelValues(table).Inc()
		return
	}
	m.events.WithLabelValues(table, string(kind)).Inc()
}
