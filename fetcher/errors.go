package fetcher

import "errors"

// Sentinel errors for configuration and transport failures.
var (
	// ErrMissingToken indicates a Config without a bearer token.
	ErrMissingToken = errors.New("fetcher: bearer token is required")

	// ErrBadPageSize indicates Config.PageSize outside [1, 500]
	// (500 is the service's per-request maximum).
	ErrBadPageSize = errors.New("fetcher: page size must be in [1, 500]")

	// ErrBadWindow indicates an observation window whose end does not
	// lie after its start.
	ErrBadWindow = errors.New("fetcher: window end must be after start")

	// ErrAuth indicates the service rejected the credentials.
	ErrAuth = errors.New("fetcher: authentication rejected")

	// ErrRateLimited indicates HTTP 429 while WaitOnRateLimit is off.
	ErrRateLimited = errors.New("fetcher: rate limited")

	// ErrAPI indicates any other non-success response from the service.
	ErrAPI = errors.New("fetcher: service error")
)
