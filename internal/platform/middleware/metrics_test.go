package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// newUnregisteredMetrics builds Metrics outside the default registry so tests
// can run repeatedly without duplicate-registration panics.
func newUnregisteredMetrics() *Metrics {
	return &Metrics{
		EndpointLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "user_registry_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
	}
}

func TestLatency_LabelsByRoutePattern(t *testing.T) {
	m := newUnregisteredMetrics()

	r := chi.NewRouter()
	r.Use(Latency(m))
	r.Delete("/api/v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Distinct path parameters must collapse into one labeled series.
	for _, target := range []string{"/api/v1/users/0", "/api/v1/users/1", "/api/v1/users/42"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	}

	if got := testutil.CollectAndCount(m.EndpointLatency); got != 1 {
		t.Errorf("series count = %d, want 1 (endpoint label should be the route pattern)", got)
	}
}

func TestLatency_FallsBackToRawPathOutsideRouter(t *testing.T) {
	m := newUnregisteredMetrics()

	handler := Latency(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := testutil.CollectAndCount(m.EndpointLatency); got != 1 {
		t.Errorf("series count = %d, want 1", got)
	}
}

func TestLatency_NilMetricsIsANoop(t *testing.T) {
	handler := Latency(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
