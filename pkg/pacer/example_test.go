package pacer

import (
	"errors"
	"fmt"
	"time"
)

// Example demonstrates wrapping a function so every call is paced.
func Example() {
	limiter, err := NewSafe(Config{RPS: 200}) // one call per 5ms
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	double := Wrap(limiter, func(x int) int { return x * 2 })

	fmt.Println(double(3))
	fmt.Println(double(21)) // waits for the next slot first

	// Output:
	// 6
	// 42
}

// Example_configuration demonstrates the two equivalent ways to set a rate.
func Example_configuration() {
	byRPS, _ := NewSafe(Config{RPS: 4})
	byDelay, _ := NewSafe(Config{Delay: 250 * time.Millisecond})
	passthrough, _ := NewSafe(Config{})

	fmt.Println("by rps:", byRPS.Interval())
	fmt.Println("by delay:", byDelay.Interval())
	fmt.Println("unconfigured:", passthrough.Interval())

	_, err := NewSafe(Config{RPS: 4, Delay: 250 * time.Millisecond})
	fmt.Println("both set:", err != nil)

	// Output:
	// by rps: 250ms
	// by delay: 250ms
	// unconfigured: 0s
	// both set: true
}

// Example_fluent demonstrates configuring and wrapping in one expression.
func Example_fluent() {
	limiter := New(Config{})

	ping := Wrap0(limiter.MustSetByRPS(500), func() {
		fmt.Println("ping")
	})

	ping()
	ping()

	fmt.Println("interval:", limiter.Interval())

	// Output:
	// ping
	// ping
	// interval: 2ms
}

// Example_adHocRates demonstrates one-shot pacing without reconfiguring.
func Example_adHocRates() {
	limiter, _ := NewSafe(Config{})

	// Each call site picks its own rate; the shared last-call state caps
	// their combined rate.
	_ = limiter.SleepByRPS(1000)
	_ = limiter.SleepByDelay(time.Millisecond)

	fmt.Println("configured interval still:", limiter.Interval())

	// Output:
	// configured interval still: 0s
}

// Example_errorPropagation demonstrates that a wrapped callable's error
// passes through the wrapper unchanged.
func Example_errorPropagation() {
	limiter, _ := NewSafe(Config{RPS: 1000})

	errNotFound := errors.New("not found")
	lookup := WrapErr(limiter, func(key string) (string, error) {
		if key != "known" {
			return "", errNotFound
		}
		return "value", nil
	})

	if _, err := lookup("missing"); errors.Is(err, errNotFound) {
		fmt.Println("got the callable's own error")
	}

	value, err := lookup("known")
	fmt.Println(value, err)

	// Output:
	// got the callable's own error
	// value <nil>
}

// Example_group demonstrates independent pacing per key.
func Example_group() {
	group := NewGroup(Config{RPS: 100})

	group.Get("search").Wait()
	group.Get("upload").Wait() // not delayed by the search limiter

	fmt.Println("limiters created:", group.Len())
	fmt.Println("same key, same limiter:", group.Get("search") == group.Get("search"))

	// Output:
	// limiters created: 2
	// same key, same limiter: true
}
