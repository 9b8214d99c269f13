package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/api/issues", "POST", 201, 5*time.Millisecond)
	m.RecordRequest("/api/issues", "POST", 201, 7*time.Millisecond)
	m.RecordRequest("/api/issues", "GET", 200, time.Millisecond)

	assert.Equal(t, int64(2), m.RequestCount("/api/issues", "POST", 201))
	assert.Equal(t, int64(1), m.RequestCount("/api/issues", "GET", 200))
	assert.Equal(t, int64(0), m.RequestCount("/api/issues", "GET", 500))
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, 0)
	m.RecordError("/", "GET", "INTERNAL_ERROR")
	assert.Equal(t, int64(0), m.RequestCount("/", "GET", 200))
}
