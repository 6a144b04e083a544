// Package fetcher acquires posts from a social-network service for
// graph making: a rate-limited, paginated REST client over the
// service's full-archive search and post-lookup endpoints.
//
// Design:
//
//   - No process-wide state. The service client and logger live on an
//     explicit Client value built from an explicit Config; lifecycle
//     is scoped to one acquisition run. Every run carries a unique run
//     id attached to each log record, because archive crawls take
//     hours under rate limiting and interleaved logs must stay
//     attributable.
//   - Field selection is fixed to what graph making needs: referenced
//     posts (reply/repost/quote), the reply-target user, and mention
//     entities, with referenced-author expansion.
//   - Pagination follows the service's opaque next-page token until
//     the window is exhausted, unless Config.MaxPostsPerUser asks for
//     a single capped page.
//   - Rate limits: on HTTP 429 with WaitOnRateLimit set, the client
//     sleeps until the reset time the service announces (cancellable
//     through the context) and retries; otherwise it fails with
//     ErrRateLimited.
//   - Partial per-item errors reported inside an otherwise-successful
//     response (deleted posts, suspended authors) are logged and
//     skipped, never fatal.
//
// Acquired posts come back as builder.Post values, ready for
// builder.Interactions — absent references are empty slices, not
// error states.
//
// Errors (sentinel):
//
//	ErrMissingToken - Config carries no bearer token.
//	ErrBadPageSize  - Config.PageSize outside [1, 500].
//	ErrBadWindow    - Config window end not after start.
//	ErrAuth         - the service rejected the credentials (401/403).
//	ErrRateLimited  - HTTP 429 with WaitOnRateLimit disabled.
//	ErrAPI          - any other non-success status.
package fetcher
