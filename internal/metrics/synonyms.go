package metrics

import "github.com/prometheus/client_golang/prometheus"

// Synonym expansion Prometheus metrics.
var (
	SynonymLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cinedex",
			Name:      "synonym_lookups_total",
			Help:      "Total number of synonym lookups per source",
		},
		[]string{"source", "status"},
	)

	SynonymLookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cinedex",
			Name:      "synonym_lookup_duration_seconds",
			Help:      "Synonym lookup duration in seconds",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"source"},
	)

	SynonymCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cinedex",
			Name:      "synonym_cache_total",
			Help:      "Synonym cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var synMetricsRegistered bool

// RegisterSynonymMetrics registers Prometheus synonym metrics. Must be called once from main.
func RegisterSynonymMetrics() {
	if synMetricsRegistered {
		return
	}
	prometheus.MustRegister(SynonymLookupsTotal)
	prometheus.MustRegister(SynonymLookupDuration)
	prometheus.MustRegister(SynonymCacheTotal)
	synMetricsRegistered = true
}
