package metrics

import "github.com/prometheus/client_golang/prometheus"

// Catalog Prometheus metrics.
var (
	CatalogMovies = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cinedex",
		Name:      "catalog_movies",
		Help:      "Number of movies loaded into the catalog",
	})

	CatalogLoadSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cinedex",
		Name:      "catalog_load_seconds",
		Help:      "Time spent loading the catalog at startup",
	})
)

var catalogMetricsRegistered bool

// RegisterCatalogMetrics registers Prometheus catalog metrics. Must be called once from main.
func RegisterCatalogMetrics() {
	if catalogMetricsRegistered {
		return
	}
	prometheus.MustRegister(CatalogMovies)
	prometheus.MustRegister(CatalogLoadSeconds)
	catalogMetricsRegistered = true
}
