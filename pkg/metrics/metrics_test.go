package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSameDayDecision(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.RecordSameDayDecision(true)
	m.RecordSameDayDecision(true)
	m.RecordSameDayDecision(false)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SameDayDecisions.WithLabelValues("true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SameDayDecisions.WithLabelValues("false")))
}

func TestRecordOrderCreated(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.RecordOrderCreated("Express")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.OrdersCreated.WithLabelValues("Express")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordSameDayDecision(true)
		m.RecordOrderCreated("Standard")
	})
}
