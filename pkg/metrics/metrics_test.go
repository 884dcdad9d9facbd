package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewWithRegisterer("coaching", prometheus.NewRegistry())

	m.RecordBooking("created")
	m.RecordBooking("created")
	m.RecordBooking("conflict")
	m.RecordNotification("booking_created", false)
	m.RecordTransition("cancelled")
	m.RecordContactMessage()
	m.RecordDBQuery("QueryRow", 5*time.Millisecond, errors.New("boom"))
	m.RecordHTTPRequest("POST", "/api/v1/bookings", 201, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsTotal.WithLabelValues("booking_created", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitionsTotal.WithLabelValues("cancelled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.contactMessagesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("QueryRow")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "201")))
}

func TestPoolStats(t *testing.T) {
	m := NewWithRegisterer("coaching", prometheus.NewRegistry())

	m.SetDBPoolStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3, WaitCount: 7})

	assert.Equal(t, 4.0, testutil.ToFloat64(m.dbOpenConnections))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbInUseConnections))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbIdleConnections))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.dbWaitCount))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordBooking("created")
		m.RecordNotification("direct", true)
		m.RecordTransition("confirmed")
		m.RecordContactMessage()
		m.RecordDBQuery("Exec", time.Millisecond, nil)
		m.RecordHTTPRequest("GET", "/healthz", 200, time.Millisecond)
		m.SetDBPoolStats(sql.DBStats{})
	})
}
