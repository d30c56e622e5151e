// Package handlers defines HTTP-layer error codes used across all API
// endpoints. These codes give clients a stable, machine-readable taxonomy
// alongside human-readable messages; handlers pass the most specific
// matching code to fail().
package handlers

const (
	ErrCodeBadRequest = "bad_request"
	ErrCodeNotFound   = "not_found"
	ErrCodeInternal   = "internal_error"

	// ErrCodeRateLimited is emitted by the rate limiter middleware, which
	// builds its envelope without importing this package; the value must stay
	// in sync with it.
	ErrCodeRateLimited = "rate_limited"

	// Domain-specific:
	ErrCodeListFailed       = "list_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
