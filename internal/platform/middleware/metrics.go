package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds request-level Prometheus metrics.
type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "user_registry_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
	}
}

func (m *Metrics) ObserveEndpointLatency(endpoint, method string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint, method).Observe(durationSeconds)
}

// Latency records per-endpoint request latency. The endpoint label is the
// matched route pattern, not the raw path, so parameterized routes like
// /api/v1/users/{id} stay a single series. A nil Metrics disables recording.
func Latency(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			if m != nil {
				m.ObserveEndpointLatency(endpointLabel(r), r.Method, time.Since(start).Seconds())
			}
		})
	}
}

// endpointLabel resolves the route pattern after routing has run; the raw
// path is the fallback outside a chi router.
func endpointLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
