package observability

import (
	"errors"
	"testing"

	"emission-service/internal/pkg/exceptions"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAuth(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveAuth("login", nil)
	m.ObserveAuth("login", nil)
	m.ObserveAuth("login", exceptions.ErrInvalidCredentials(nil))
	m.ObserveAuth("signup", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "401")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("signup", "error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveAuth("login", nil)
		m.ObserveVehicleUpdate("profile")
	})
}
