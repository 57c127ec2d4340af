package pacer

import (
	"sync"
	"time"

	"github.com/vnykmshr/gopace/pkg/common/errors"
	"github.com/vnykmshr/gopace/pkg/common/validation"
)

// moduleName identifies this package in validation errors.
const moduleName = "pacer"

// Limiter enforces a minimum interval between consecutive calls. All
// entry points share one last-call timestamp, so the combined rate of
// every caller and call site using the same Limiter is capped at
// 1/interval.
type Limiter interface {
	// Wait blocks until at least the configured interval has elapsed
	// since the previously permitted call, then reserves the slot.
	// With a zero interval it returns immediately.
	Wait()

	// SetByRPS sets the interval to 1/maxRPS. It returns a validation
	// error and leaves the interval unchanged if maxRPS is not positive.
	SetByRPS(maxRPS float64) error

	// SetByDelay sets the interval to delay. It returns a validation
	// error and leaves the interval unchanged if delay is negative.
	SetByDelay(delay time.Duration) error

	// MustSetByRPS is like SetByRPS but panics on invalid input and
	// returns the same Limiter, so it can be configured and wrapped in
	// a single expression.
	MustSetByRPS(maxRPS float64) Limiter

	// MustSetByDelay is like SetByDelay but panics on invalid input and
	// returns the same Limiter.
	MustSetByDelay(delay time.Duration) Limiter

	// SleepByRPS blocks as Wait does, but paces this one call with an
	// interval of 1/maxRPS instead of the configured one. The configured
	// interval is not changed; the last-call timestamp is shared.
	SleepByRPS(maxRPS float64) error

	// SleepByDelay blocks as Wait does, but paces this one call with the
	// given delay instead of the configured interval.
	SleepByDelay(delay time.Duration) error

	// Interval returns the currently configured minimum interval.
	Interval() time.Duration
}

// Clock provides the current time and blocking sleep. It can be mocked
// for testing. Implementations must be monotonic: readings from Now must
// never go backward when the wall clock is adjusted.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock implements Clock using the system time. time.Now carries a
// monotonic reading, so elapsed-time arithmetic is immune to wall-clock
// adjustments.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine for at least d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Config holds configuration options for creating a new Limiter.
// RPS and Delay are mutually exclusive; a zero field means "not set".
// With neither set the limiter is a passthrough (zero interval).
type Config struct {
	// RPS is the maximum number of calls per second. The interval is
	// derived as 1/RPS.
	RPS float64

	// Delay is the minimum interval between calls.
	Delay time.Duration

	// Clock provides the current time. If nil, SystemClock is used.
	Clock Clock
}

// interval validates the config and derives the minimum interval.
func (c Config) interval() (time.Duration, error) {
	if c.RPS != 0 && c.Delay != 0 {
		return 0, errors.NewValidationError(moduleName, "delay", c.Delay, "mutually exclusive with rps").
			WithHint("set either RPS or Delay, not both")
	}
	if err := validation.ValidateNonNegative(moduleName, "rps", c.RPS); err != nil {
		return 0, err
	}
	if err := validation.ValidateNonNegativeDuration(moduleName, "delay", c.Delay); err != nil {
		return 0, err
	}
	if c.RPS > 0 {
		return intervalForRPS(c.RPS), nil
	}
	return c.Delay, nil
}

// intervalForRPS converts a calls-per-second target to the minimum
// interval between calls. The caller guarantees rps > 0.
func intervalForRPS(rps float64) time.Duration {
	return time.Duration(float64(time.Second) / rps)
}

// pacer implements the Limiter interface. lastCall is the timestamp of
// the most recently permitted call; the zero value means "never called".
type pacer struct {
	mu       sync.Mutex
	interval time.Duration
	lastCall time.Time
	clock    Clock
}

// New creates a new pacing limiter and panics on invalid configuration.
func New(config Config) Limiter {
	limiter, err := NewSafe(config)
	if err != nil {
		panic(err)
	}
	return limiter
}

// NewSafe creates a new pacing limiter with validation that returns an
// error instead of panicking. This is the recommended way to create
// limiters for production use.
func NewSafe(config Config) (Limiter, error) {
	interval, err := config.interval()
	if err != nil {
		return nil, err
	}
	if config.Clock == nil {
		config.Clock = SystemClock{}
	}

	return &pacer{
		interval: interval,
		clock:    config.Clock,
	}, nil
}
