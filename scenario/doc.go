// Package scenario loads declarative join workloads for the demo driver.
//
// A scenario is a YAML document describing the collection handed to
// std::future::join: its container shape and one entry per element. Each
// entry either resolves to a value after a delay or fails with a message,
// and can be marked literal to inject a plain value where a future is
// expected (demonstrating coercion failures).
//
//	shape: list
//	tasks:
//	  - name: fetch-a
//	    delay: 20ms
//	    value: alpha
//	  - name: boom
//	    delay: 5ms
//	    fail: connection reset
package scenario
