package pacer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gopace/pkg/metrics"
)

// limiterType labels pacer metrics to distinguish them from other
// limiter implementations sharing a registry.
const limiterType = "pacer"

// MetricsLimiter wraps a Limiter with Prometheus metrics collection.
type MetricsLimiter struct {
	limiter  Limiter
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new pacing limiter with metrics enabled.
func NewWithMetrics(config Config, name string) (Limiter, error) {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	metricsConfig := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(config, name, metricsConfig)
}

// NewWithConfigAndMetrics creates a new pacing limiter with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) (Limiter, error) {
	baseLimiter, err := NewSafe(config)
	if err != nil {
		return nil, err
	}

	if !metricsConfig.Enabled {
		return baseLimiter, nil
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	ml := &MetricsLimiter{
		limiter:  baseLimiter,
		name:     name,
		registry: registry,
		enabled:  true,
	}
	ml.registry.PaceInterval.WithLabelValues(limiterType, ml.name).Set(baseLimiter.Interval().Seconds())

	return ml, nil
}

// Wait blocks until the next call slot is free.
func (ml *MetricsLimiter) Wait() {
	start := time.Now()

	ml.limiter.Wait()

	if ml.enabled {
		ml.registry.PaceRequests.WithLabelValues(limiterType, ml.name).Inc()
		ml.registry.PaceWaitTime.WithLabelValues(limiterType, ml.name).Observe(time.Since(start).Seconds())
	}
}

// SleepByRPS paces this one call at 1/maxRPS.
func (ml *MetricsLimiter) SleepByRPS(maxRPS float64) error {
	start := time.Now()

	err := ml.limiter.SleepByRPS(maxRPS)

	if ml.enabled && err == nil {
		ml.registry.PaceRequests.WithLabelValues(limiterType, ml.name).Inc()
		ml.registry.PaceWaitTime.WithLabelValues(limiterType, ml.name).Observe(time.Since(start).Seconds())
	}

	return err
}

// SleepByDelay paces this one call with the given delay.
func (ml *MetricsLimiter) SleepByDelay(delay time.Duration) error {
	start := time.Now()

	err := ml.limiter.SleepByDelay(delay)

	if ml.enabled && err == nil {
		ml.registry.PaceRequests.WithLabelValues(limiterType, ml.name).Inc()
		ml.registry.PaceWaitTime.WithLabelValues(limiterType, ml.name).Observe(time.Since(start).Seconds())
	}

	return err
}

// SetByRPS changes the configured interval to 1/maxRPS.
func (ml *MetricsLimiter) SetByRPS(maxRPS float64) error {
	err := ml.limiter.SetByRPS(maxRPS)

	if ml.enabled && err == nil {
		ml.registry.PaceInterval.WithLabelValues(limiterType, ml.name).Set(ml.limiter.Interval().Seconds())
	}

	return err
}

// SetByDelay changes the configured interval to delay.
func (ml *MetricsLimiter) SetByDelay(delay time.Duration) error {
	err := ml.limiter.SetByDelay(delay)

	if ml.enabled && err == nil {
		ml.registry.PaceInterval.WithLabelValues(limiterType, ml.name).Set(ml.limiter.Interval().Seconds())
	}

	return err
}

// MustSetByRPS changes the configured interval and returns this limiter
// for chaining. It panics if maxRPS is not positive.
func (ml *MetricsLimiter) MustSetByRPS(maxRPS float64) Limiter {
	if err := ml.SetByRPS(maxRPS); err != nil {
		panic(err)
	}
	return ml
}

// MustSetByDelay changes the configured interval and returns this limiter
// for chaining. It panics if delay is negative.
func (ml *MetricsLimiter) MustSetByDelay(delay time.Duration) Limiter {
	if err := ml.SetByDelay(delay); err != nil {
		panic(err)
	}
	return ml
}

// Interval returns the currently configured minimum interval.
func (ml *MetricsLimiter) Interval() time.Duration {
	return ml.limiter.Interval()
}

// EnableMetrics enables metrics collection.
func (ml *MetricsLimiter) EnableMetrics(config metrics.Config) error {
	ml.enabled = config.Enabled

	if config.Registry != nil {
		ml.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (ml *MetricsLimiter) DisableMetrics() {
	ml.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ml *MetricsLimiter) MetricsEnabled() bool {
	return ml.enabled
}
