// Package clients provides the resilient HTTP client the graph store uses
// to reach its SPARQL endpoint.
package clients

import "errors"

// Transport failures. The sparql package translates them into
// domain.UnavailableError so the API can answer 503.
var (
	// ErrCircuitOpen means the breaker rejected the request without sending it.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure once every attempt is spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
