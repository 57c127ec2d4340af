/*
Package gopace provides a minimal thread-safe pacing rate limiter for Go
applications that must not exceed an external service's call rate.

Pacing (pkg/pacer):
  - pacer: Blocking interval limiter configured by RPS or by delay
  - Group: Keyed limiters sharing one configuration
  - Wrap/WrapErr: Apply a limiter to any callable

Example usage:

	import "github.com/vnykmshr/gopace/pkg/pacer"

	limiter, _ := pacer.NewSafe(pacer.Config{RPS: 10}) // 10 calls/sec

	fetch := pacer.WrapErr(limiter, func(url string) (*http.Response, error) {
		return http.Get(url)
	})

	resp, err := fetch("https://api.example.com/items") // waits if needed

A single limiter caps the aggregate rate across every goroutine and call
site that shares it; throughput is 1/interval in total, not per caller.
*/
package gopace
