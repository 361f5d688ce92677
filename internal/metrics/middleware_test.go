package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/movies", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})
	r.Get("/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("{}"))
	})
	r.Get("/boom", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	return r
}

func TestMetricsMiddleware_RecordsDurationAndCount(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest("GET", "/movies", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	if v := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/movies", "200")); v < 1 {
		t.Errorf("expected http_requests_total >= 1, got %f", v)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected http_request_duration_seconds to have observations")
	}
	if v := testutil.ToFloat64(httpRequestsInFlight); v != 0 {
		t.Errorf("expected no in-flight requests after completion, got %f", v)
	}
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := newTestRouter()

	for _, id := range []string{"s1", "s2", "s3"} {
		req := httptest.NewRequest("GET", "/movies/"+id, http.NoBody)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	if v := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/movies/{id}", "200")); v < 3 {
		t.Errorf("expected >= 3 requests labelled /movies/{id}, got %f", v)
	}
}

func TestMetricsMiddleware_StatusCodes(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		target  string
		pattern string
		status  string
	}{
		{"/movies/missing", "/movies/{id}", "404"},
		{"/boom", "/boom", "500"},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.target, http.NoBody)
			r.ServeHTTP(httptest.NewRecorder(), req)

			if v := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", tc.pattern, tc.status)); v < 1 {
				t.Errorf("expected requests_total for %s with status %s >= 1, got %f", tc.pattern, tc.status, v)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "unknown"},
		{"/movies/{id}", "/movies/{id}"},
		{"/chatbot", "/chatbot"},
	}

	for _, tc := range tests {
		if got := normalizePath(tc.input); got != tc.expected {
			t.Errorf("normalizePath(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestRegisterSynonymMetrics_Idempotent(t *testing.T) {
	RegisterSynonymMetrics()
	RegisterSynonymMetrics()

	SynonymCacheTotal.WithLabelValues("hit").Inc()
	if v := testutil.ToFloat64(SynonymCacheTotal.WithLabelValues("hit")); v < 1 {
		t.Errorf("expected cache hit counter >= 1, got %f", v)
	}
}

func TestRegisterCatalogMetrics_Idempotent(t *testing.T) {
	RegisterCatalogMetrics()
	RegisterCatalogMetrics()

	CatalogMovies.Set(42)
	if v := testutil.ToFloat64(CatalogMovies); v != 42 {
		t.Errorf("expected catalog_movies=42, got %f", v)
	}
}
