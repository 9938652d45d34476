package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/tendril/pkg/resolve"
)

// Metrics exposes resolution activity as Prometheus collectors. The engine
// itself stays metrics-free; hosts that want counters wire these hooks into
// their resolver and register the metrics with their registry.
type Metrics struct {
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
	FuncCalls   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tendril_cache_hits_total",
			Help: "Reference resolutions served from the per-call memo cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tendril_cache_misses_total",
			Help: "Reference resolutions computed",
		}),
		FuncCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tendril_func_calls_total",
			Help: "Dependency function invocations",
		}, []string{"ref"}),
	}
	reg.MustRegister(m.CacheHits, m.CacheMisses, m.FuncCalls)
	return m
}

// Hooks returns resolver hooks feeding these collectors. Compose manually
// if the resolver also needs other callbacks.
func (m *Metrics) Hooks() resolve.Hooks {
	return resolve.Hooks{
		OnCacheHit: func(ref string) {
			m.CacheHits.Inc()
		},
		OnCacheMiss: func(ref string) {
			m.CacheMisses.Inc()
		},
		OnFuncCall: func(ref string) {
			if ref == "" {
				ref = "(inline)"
			}
			m.FuncCalls.WithLabelValues(ref).Inc()
		},
	}
}
