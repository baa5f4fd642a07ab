package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("salon-test", reg)

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/vendors/{vendorId}/available-slots", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/vendors/{vendorId}/available-slots", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/appointments", http.StatusConflict, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/vendors/{vendorId}/available-slots", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/appointments", "409")))

	m.ObserveDBQuery("SELECT", nil, time.Millisecond)
	m.ObserveDBQuery("SELECT", sql.ErrNoRows, time.Millisecond)
	m.ObserveDBQuery("INSERT", errors.New("boom"), time.Millisecond)
	assert.Equal(t, 2, testutil.CollectAndCount(m.dbQueryDuration))

	m.SetDBPoolStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3})
	assert.Equal(t, 4.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("open")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("idle")))
}
