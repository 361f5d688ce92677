package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cinedex",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cinedex",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cinedex",
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestsInFlight)
}

// Middleware records HTTP request duration, count and in-flight requests.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			httpRequestsInFlight.Inc()
			defer httpRequestsInFlight.Dec()

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			// Route pattern keeps /movies/{id} as a single label value.
			path := "unknown"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				path = normalizePath(rctx.RoutePattern())
			}

			labels := []string{r.Method, path, strconv.Itoa(status)}
			httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(labels...).Inc()
		})
	}
}

// normalizePath normalizes paths to prevent high cardinality in metrics labels.
func normalizePath(path string) string {
	if path == "" {
		return "unknown"
	}
	return path
}
