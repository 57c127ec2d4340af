package pacer

import (
	"time"

	"github.com/vnykmshr/gopace/pkg/common/validation"
)

// Wait blocks until the configured interval has elapsed since the last
// permitted call, then records this call as the new last one.
func (p *pacer) Wait() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.waitLocked(p.interval)
}

// SleepByRPS paces this one call at 1/maxRPS without changing the
// configured interval.
func (p *pacer) SleepByRPS(maxRPS float64) error {
	if err := validation.ValidatePositiveFloat(moduleName, "maxRPS", maxRPS); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.waitLocked(intervalForRPS(maxRPS))
	return nil
}

// SleepByDelay paces this one call with the given delay without changing
// the configured interval.
func (p *pacer) SleepByDelay(delay time.Duration) error {
	if err := validation.ValidateNonNegativeDuration(moduleName, "delay", delay); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.waitLocked(delay)
	return nil
}

// SetByRPS changes the configured interval to 1/maxRPS.
func (p *pacer) SetByRPS(maxRPS float64) error {
	if err := validation.ValidatePositiveFloat(moduleName, "maxRPS", maxRPS); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = intervalForRPS(maxRPS)
	return nil
}

// SetByDelay changes the configured interval to delay.
func (p *pacer) SetByDelay(delay time.Duration) error {
	if err := validation.ValidateNonNegativeDuration(moduleName, "delay", delay); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = delay
	return nil
}

// MustSetByRPS changes the configured interval to 1/maxRPS and returns
// the limiter for chaining. It panics if maxRPS is not positive.
func (p *pacer) MustSetByRPS(maxRPS float64) Limiter {
	if err := p.SetByRPS(maxRPS); err != nil {
		panic(err)
	}
	return p
}

// MustSetByDelay changes the configured interval to delay and returns
// the limiter for chaining. It panics if delay is negative.
func (p *pacer) MustSetByDelay(delay time.Duration) Limiter {
	if err := p.SetByDelay(delay); err != nil {
		panic(err)
	}
	return p
}

// Interval returns the currently configured minimum interval.
func (p *pacer) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// waitLocked reserves the next call slot. The caller must hold p.mu; the
// lock is held across the entire read-sleep-record sequence so that two
// goroutines can never compute a wait from the same stale timestamp.
func (p *pacer) waitLocked(interval time.Duration) {
	now := p.clock.Now()
	if !p.lastCall.IsZero() {
		if remaining := interval - now.Sub(p.lastCall); remaining > 0 {
			p.clock.Sleep(remaining)
			now = p.clock.Now()
		}
	}
	p.lastCall = now
}
