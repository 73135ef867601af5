package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	UsersCreated        prometheus.Counter
	UsersRemoved        prometheus.Counter
	DuplicatesRejected  prometheus.Counter
	InvalidBirthNumbers prometheus.Counter
	SearchDuration      prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "user_registry_users_created_total",
			Help: "Total number of users added to the registry",
		}),
		UsersRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "user_registry_users_removed_total",
			Help: "Total number of users removed from the registry",
		}),
		DuplicatesRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "user_registry_duplicate_birth_numbers_total",
			Help: "Total number of add attempts rejected for a duplicate birth number",
		}),
		InvalidBirthNumbers: promauto.NewCounter(prometheus.CounterOpts{
			Name: "user_registry_invalid_birth_numbers_total",
			Help: "Total number of add attempts rejected for an invalid birth number",
		}),
		SearchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "user_registry_search_duration_seconds",
			Help:    "Duration of filtered user searches",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

func (m *Metrics) IncrementUsersRemoved() {
	m.UsersRemoved.Inc()
}

func (m *Metrics) IncrementDuplicatesRejected() {
	m.DuplicatesRejected.Inc()
}

func (m *Metrics) IncrementInvalidBirthNumbers() {
	m.InvalidBirthNumbers.Inc()
}

func (m *Metrics) ObserveSearch(start time.Time) {
	m.SearchDuration.Observe(time.Since(start).Seconds())
}
