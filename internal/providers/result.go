// Package providers wraps each external data source behind a uniform
// fetch contract. Every adapter returns a Result so the aggregator can
// merge outcomes without per-provider special cases.
package providers

import "time"

// Status tags the outcome of one provider fetch.
type Status string

const (
	// StatusOK means fresh data was fetched (or served within its TTL).
	StatusOK Status = "ok"
	// StatusUnavailable means the provider was reachable but returned no
	// usable data; Reason records why, including parse failures.
	StatusUnavailable Status = "unavailable"
	// StatusRateLimited means the provider returned HTTP 429. The caller
	// should consult the cache for a stale fallback before giving up.
	StatusRateLimited Status = "rate_limited"
	// StatusStale means cached data past its TTL served as a fallback.
	StatusStale Status = "stale"
)

// Result is the tagged outcome of a provider fetch. Data and FetchedAt
// are meaningful only for StatusOK and StatusStale.
type Result[T any] struct {
	Status    Status
	Data      T
	FetchedAt time.Time
	Reason    string
}

// Usable reports whether the result carries data the caller may merge.
func (r Result[T]) Usable() bool {
	return r.Status == StatusOK || r.Status == StatusStale
}

// Ok builds a fresh result.
func Ok[T any](data T, fetchedAt time.Time) Result[T] {
	return Result[T]{Status: StatusOK, Data: data, FetchedAt: fetchedAt}
}

// Stale builds a stale-fallback result.
func Stale[T any](data T, fetchedAt time.Time) Result[T] {
	return Result[T]{Status: StatusStale, Data: data, FetchedAt: fetchedAt}
}

// Unavailable builds a no-data result with a cause.
func Unavailable[T any](reason string) Result[T] {
	return Result[T]{Status: StatusUnavailable, Reason: reason}
}

// RateLimited builds a quota-exhausted result.
func RateLimited[T any]() Result[T] {
	return Result[T]{Status: StatusRateLimited, Reason: "rate limited"}
}
