package models

import "errors"

// Typed failure kinds for the analysis pipeline. Callers branch on these
// with errors.Is; none of them should escape the HTTP boundary unmapped.
var (
	// ErrSymbolNotFound means the resolver exhausted all match tiers.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrGatewayUnavailable is a transient upstream failure, retryable by the caller.
	ErrGatewayUnavailable = errors.New("market data gateway unavailable")

	// ErrGatewayTimeout means the upstream call exceeded its deadline.
	ErrGatewayTimeout = errors.New("market data gateway timeout")

	// ErrEmptySeries means a valid symbol returned no usable bars for the
	// requested interval. It triggers the fallback-interval retry, not a
	// hard failure.
	ErrEmptySeries = errors.New("empty price series")

	// ErrInsufficientData means the series stayed below the indicator
	// minimum even after the fallback retry. Terminal for the request.
	ErrInsufficientData = errors.New("insufficient price history")

	// ErrMalformedSnapshot means the fundamentals payload was missing
	// expected numeric types. Screening treats this as "ratio absent".
	ErrMalformedSnapshot = errors.New("malformed fundamentals snapshot")
)
