package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AuthEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_events_total",
			Help: "Registrations, activations, logins and refreshes by result.",
		},
		[]string{"event", "result"},
	)

	CartEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_events_total",
			Help: "Cart additions and checkouts by result.",
		},
		[]string{"event", "result"},
	)

	registerOnce sync.Once
)

// MustRegister adds the collectors to the default registry labelled with
// serviceName. Later calls are no-ops.
func MustRegister(serviceName string) {
	registerOnce.Do(func() {
		registerer := prometheus.WrapRegistererWith(prometheus.Labels{"service": serviceName}, prometheus.DefaultRegisterer)
		registerer.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			AuthEventsTotal,
			CartEventsTotal,
		)
	})
}

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
