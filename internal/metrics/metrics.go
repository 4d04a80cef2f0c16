// Package metrics exposes Prometheus collectors for the restaurant pizza API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "restaurant_pizza"
	subsystem = "api"
)

// Manager owns a registry and the collectors registered on it.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	restaurantPizzasCreated prometheus.Counter
	restaurantsDeleted      prometheus.Counter
	validationFailures      *prometheus.CounterVec
}

// NewManager creates a manager backed by a fresh registry that also carries
// the Go runtime and process collectors.
func NewManager() *Manager {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(reg)

	return &Manager{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		}, []string{"route", "method", "status_code"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		restaurantPizzasCreated: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "restaurant_pizzas_created_total",
			Help:      "Total number of restaurant pizzas created",
		}),
		restaurantsDeleted: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "restaurants_deleted_total",
			Help:      "Total number of restaurants deleted",
		}),
		validationFailures: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "validation_failures_total",
			Help:      "Total number of rejected restaurant pizza creations by reason",
		}, []string{"reason"}),
	}
}

var defaultManager = NewManager() //nolint:gochecknoglobals // process wide registry served on /metrics

// Default returns the process wide manager.
func Default() *Manager {
	return defaultManager
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest records one finished request.
func (m *Manager) ObserveHTTPRequest(route, method, statusCode string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Manager) RestaurantPizzaCreated() {
	m.restaurantPizzasCreated.Inc()
}

func (m *Manager) RestaurantDeleted() {
	m.restaurantsDeleted.Inc()
}

// ValidationFailed counts a rejected creation; reason is "price" or "invalid".
func (m *Manager) ValidationFailed(reason string) {
	m.validationFailures.WithLabelValues(reason).Inc()
}
