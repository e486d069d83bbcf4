package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	initialSuccess := testutil.ToFloat64(OperationsTotal.WithLabelValues("article", "ship", ResultSuccess))
	initialFailure := testutil.ToFloat64(OperationsTotal.WithLabelValues("article", "ship", ResultFailure))

	ObserveOperation("article", "ship", true, 0.01)
	ObserveOperation("article", "ship", false, 0.02)
	ObserveOperation("article", "ship", false, 0.02)

	assert.Equal(t, initialSuccess+1, testutil.ToFloat64(OperationsTotal.WithLabelValues("article", "ship", ResultSuccess)))
	assert.Equal(t, initialFailure+2, testutil.ToFloat64(OperationsTotal.WithLabelValues("article", "ship", ResultFailure)))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(OperationDuration), 1)
}

func TestTaskSubmitted(t *testing.T) {
	initialQueued := testutil.ToFloat64(TasksTotal.WithLabelValues("email", ResultQueued))
	initialDropped := testutil.ToFloat64(TasksTotal.WithLabelValues("email", ResultDropped))

	TaskSubmitted("email", true)
	TaskSubmitted("email", false)

	assert.Equal(t, initialQueued+1, testutil.ToFloat64(TasksTotal.WithLabelValues("email", ResultQueued)))
	assert.Equal(t, initialDropped+1, testutil.ToFloat64(TasksTotal.WithLabelValues("email", ResultDropped)))
}

func TestStartEndTask(t *testing.T) {
	initialInFlight := testutil.ToFloat64(TasksInFlight.WithLabelValues("verification_email"))
	initialFailures := testutil.ToFloat64(TasksTotal.WithLabelValues("verification_email", ResultFailure))

	StartTask("verification_email")
	assert.Equal(t, initialInFlight+1, testutil.ToFloat64(TasksInFlight.WithLabelValues("verification_email")))

	EndTask("verification_email", errors.New("smtp down"), 0.3)
	assert.Equal(t, initialInFlight, testutil.ToFloat64(TasksInFlight.WithLabelValues("verification_email")))
	assert.Equal(t, initialFailures+1, testutil.ToFloat64(TasksTotal.WithLabelValues("verification_email", ResultFailure)))
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	assert.Equal(t, initialRequests+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")))
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()
	time.Sleep(20 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	assert.Equal(t, 1, testutil.CollectAndCount(testHistogram))
	assert.GreaterOrEqual(t, timer.Seconds(), 0.02)
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	provider := &mockPoolStatsProvider{totalConns: 10, idleConns: 4, acquiredConns: 6}

	collector := NewPoolStatsCollectorWithProvider(provider)
	collector.Start(10 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	collector.Stop()

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(4), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(6), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{
		total:    m.totalConns,
		idle:     m.idleConns,
		acquired: m.acquiredConns,
	}
}
