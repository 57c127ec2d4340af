/*
Package pacer provides blocking interval-based rate limiting for Go
applications.

A pacer enforces a minimum interval between consecutive calls, configured
either as a maximum requests-per-second target or as an explicit delay.
Unlike token bucket limiters it never allows bursts: every call is spaced
at least one interval from the previous one, which makes it ideal for
clients of external APIs with strict call-rate terms.

Basic usage:

	limiter, err := pacer.NewSafe(pacer.Config{RPS: 10}) // one call per 100ms
	if err != nil {
		log.Fatal(err)
	}

	for _, item := range items {
		limiter.Wait() // blocks until the next slot is free
		upload(item)
	}

Configuration:

RPS and Delay are mutually exclusive; supplying both is a configuration
error. Supplying neither yields an interval of zero, which disables
throttling entirely (Wait returns immediately).

	pacer.Config{RPS: 4}                      // one call per 250ms
	pacer.Config{Delay: 250 * time.Millisecond} // identical behavior
	pacer.Config{}                            // passthrough, no throttling

Wrapping callables:

Wrap, WrapErr and Wrap0 return a function identical in signature to the
one given, with the limiter's wait injected before every call:

	double := pacer.Wrap(limiter, func(x int) int { return x * 2 })
	double(3) // waits for a slot, then returns 6

The wrapped function uses the interval configured at call time, so
reconfiguring the limiter changes behavior for all future calls through
existing wrappers. Return values and errors pass through untouched.

Ad hoc rates:

SleepByRPS and SleepByDelay pace a single call with a one-shot interval
without changing the configured one. They share the limiter's last-call
state with every other path, so heterogeneous call sites sharing one
limiter are capped in aggregate:

	limiter.SleepByRPS(2)                     // at most 2/s through this site
	limiter.SleepByDelay(time.Second)         // at least 1s after any prior call

Fluent configuration:

MustSetByRPS and MustSetByDelay return the limiter itself, so a limiter
can be reconfigured and wrapped in one expression:

	fetch := pacer.WrapErr(limiter.MustSetByRPS(5), doFetch)

Keyed groups:

A Group hands out independently paced limiters by key, all built from one
configuration. Call sites that share a key share a rate; distinct keys
throttle independently:

	group, _ := pacer.NewGroupSafe(pacer.Config{RPS: 3})
	group.Get("search").Wait()
	group.Get("upload").Wait() // unaffected by the search limiter

Thread safety:

All operations are safe for concurrent use. A single mutex guards the
whole check-sleep-record sequence, so goroutines sharing one limiter are
serialized and their combined throughput is capped at 1/interval. The
mutex is not reentrant: a wrapped function must not call back into the
same limiter synchronously, or it will deadlock.

Waits cannot be canceled or timed out; a caller needing cancellation must
arrange it outside the limiter.
*/
package pacer
