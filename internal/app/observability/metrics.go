package observability

import (
	"errors"
	"strconv"

	"emission-service/internal/pkg/exceptions"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "emission_service"

// Metrics holds the Prometheus collectors for the web application.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec   // labels: method, route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route
	AuthAttempts        *prometheus.CounterVec   // labels: operation={signup,login,logout}, outcome
	VehicleUpdates      *prometheus.CounterVec   // labels: source={signup,login,profile}
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		AuthAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Signup, login and logout attempts by outcome.",
		}, []string{"operation", "outcome"}),
		VehicleUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vehicle_updates_total",
			Help:      "Vehicle profile writes by the flow that caused them.",
		}, []string{"source"}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.AuthAttempts,
		m.VehicleUpdates,
	)

	return m
}

// ObserveAuth records the outcome of an auth operation. The outcome is
// "success", the HTTP status of a CustomError, or "error".
func (m *Metrics) ObserveAuth(operation string, err error) {
	if m == nil {
		return
	}
	m.AuthAttempts.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) ObserveVehicleUpdate(source string) {
	if m == nil {
		return
	}
	m.VehicleUpdates.WithLabelValues(source).Inc()
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return strconv.Itoa(customErr.StatusCode)
	}
	return "error"
}
