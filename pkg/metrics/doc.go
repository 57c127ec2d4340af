// Package metrics provides Prometheus instrumentation for gopace components.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	limiter, err := pacer.NewWithMetrics(pacer.Config{RPS: 10}, "api_calls")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	limiter, err := pacer.NewWithConfigAndMetrics(
//		pacer.Config{RPS: 5},
//		"custom_limiter",
//		config,
//	)
//
// # Available Metrics
//
//   - gopace_pacer_requests_total: Total number of calls paced through a limiter
//   - gopace_pacer_wait_duration_seconds: Time spent blocked waiting for the next call slot
//   - gopace_pacer_interval_seconds: Currently configured minimum interval between calls
//
// All metrics carry limiter_type and limiter_name labels, so several
// limiter instances can share one registry.
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	ml.DisableMetrics()            // Stop collecting metrics
//	ml.EnableMetrics(config)       // Re-enable with new config
//	enabled := ml.MetricsEnabled() // Check current state
//
// # Performance
//
// Metrics are updated only when calls occur; there are no background
// goroutines or timers, and updates are skipped entirely while disabled.
package metrics
