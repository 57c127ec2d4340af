package pacer

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnykmshr/gopace/internal/testutil"
	"github.com/vnykmshr/gopace/pkg/metrics"
)

func newTestMetricsLimiter(t *testing.T, config Config) (Limiter, *metrics.Registry) {
	t.Helper()

	promRegistry := prometheus.NewRegistry()
	limiter, err := NewWithConfigAndMetrics(config, "test", metrics.Config{
		Enabled:  true,
		Registry: promRegistry,
	})
	testutil.AssertNoError(t, err)

	ml, ok := limiter.(*MetricsLimiter)
	if !ok {
		t.Fatalf("expected *MetricsLimiter, got %T", limiter)
	}
	return ml, ml.registry
}

func TestNewWithConfigAndMetricsValidation(t *testing.T) {
	limiter, err := NewWithConfigAndMetrics(Config{RPS: -1}, "bad", metrics.DefaultConfig())
	testutil.AssertError(t, err)
	if limiter != nil {
		t.Error("expected nil limiter on error")
	}
}

func TestMetricsDisabledReturnsBaseLimiter(t *testing.T) {
	limiter, err := NewWithConfigAndMetrics(Config{RPS: 10}, "plain", metrics.Config{Enabled: false})
	testutil.AssertNoError(t, err)

	if _, ok := limiter.(*MetricsLimiter); ok {
		t.Error("disabled metrics should return the base limiter, not a wrapper")
	}
	testutil.AssertEqual(t, limiter.Interval(), 100*time.Millisecond)
}

func TestMetricsCountWaits(t *testing.T) {
	clock := testutil.NewMockClock(time.Time{})
	limiter, registry := newTestMetricsLimiter(t, Config{Delay: time.Millisecond, Clock: clock})

	limiter.Wait()
	limiter.Wait()
	testutil.AssertNoError(t, limiter.SleepByDelay(time.Millisecond))

	requests := promtestutil.ToFloat64(registry.PaceRequests.WithLabelValues(limiterType, "test"))
	testutil.AssertEqual(t, requests, 3.0)
}

func TestMetricsRejectedCallsNotCounted(t *testing.T) {
	limiter, registry := newTestMetricsLimiter(t, Config{Delay: time.Millisecond})

	testutil.AssertError(t, limiter.SleepByRPS(-1))
	testutil.AssertError(t, limiter.SleepByDelay(-time.Second))

	requests := promtestutil.ToFloat64(registry.PaceRequests.WithLabelValues(limiterType, "test"))
	testutil.AssertEqual(t, requests, 0.0)
}

func TestMetricsIntervalGaugeTracksConfiguration(t *testing.T) {
	limiter, registry := newTestMetricsLimiter(t, Config{RPS: 10})

	gauge := registry.PaceInterval.WithLabelValues(limiterType, "test")
	testutil.AssertEqual(t, promtestutil.ToFloat64(gauge), 0.1)

	testutil.AssertNoError(t, limiter.SetByDelay(time.Second))
	testutil.AssertEqual(t, promtestutil.ToFloat64(gauge), 1.0)

	// Rejected reconfiguration leaves the gauge alone.
	testutil.AssertError(t, limiter.SetByRPS(0))
	testutil.AssertEqual(t, promtestutil.ToFloat64(gauge), 1.0)
}

func TestMetricsMustSettersReturnWrapper(t *testing.T) {
	limiter, _ := newTestMetricsLimiter(t, Config{})

	if limiter.MustSetByRPS(4) != limiter {
		t.Error("MustSetByRPS should return the metrics wrapper itself")
	}
	testutil.AssertEqual(t, limiter.Interval(), 250*time.Millisecond)
}

func TestMetricsLifecycle(t *testing.T) {
	limiter, registry := newTestMetricsLimiter(t, Config{})
	ml := limiter.(*MetricsLimiter)

	testutil.AssertEqual(t, ml.MetricsEnabled(), true)

	ml.DisableMetrics()
	testutil.AssertEqual(t, ml.MetricsEnabled(), false)

	limiter.Wait()
	requests := promtestutil.ToFloat64(registry.PaceRequests.WithLabelValues(limiterType, "test"))
	testutil.AssertEqual(t, requests, 0.0)

	testutil.AssertNoError(t, ml.EnableMetrics(metrics.Config{Enabled: true}))
	testutil.AssertEqual(t, ml.MetricsEnabled(), true)
}
