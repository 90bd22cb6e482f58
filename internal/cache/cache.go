// Package cache is the short-lived, per-provider memoization layer. Keys
// are (provider, subject, calendar day); entries older than the provider's
// TTL are never served as fresh, but remain readable through GetStale for
// the aggregator's rate-limit fallback until the retention window closes.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// StaleRetention bounds how long an expired entry stays readable as a
// stale fallback before it is dropped entirely.
const StaleRetention = 24 * time.Hour

// Entry is one cached value with its insertion time.
type Entry struct {
	Value      json.RawMessage `json:"value"`
	InsertedAt time.Time       `json:"inserted_at"`
}

// Store is the per-provider cache contract. Get returns (nil, nil) when
// the entry is absent or past the provider's TTL; GetStale bypasses the
// TTL check and is meant only for explicit stale fallbacks.
type Store interface {
	Get(ctx context.Context, provider, key string) (*Entry, error)
	GetStale(ctx context.Context, provider, key string) (*Entry, error)
	Put(ctx context.Context, provider, key string, value interface{}) error
}

// TTLs maps a provider name to its freshness window.
type TTLs map[string]time.Duration

// TTL returns the provider's window, falling back to 15 minutes.
func (t TTLs) TTL(provider string) time.Duration {
	if d, ok := t[provider]; ok {
		return d
	}
	return 15 * time.Minute
}

// DayKey appends the calendar day to a subject key so entries roll over
// at midnight regardless of TTL.
func DayKey(subject string, day time.Time) string {
	return fmt.Sprintf("%s:%s", subject, day.Format("20060102"))
}

// Decode unmarshals an entry's value into T.
func Decode[T any](e *Entry) (T, error) {
	var v T
	if e == nil {
		return v, fmt.Errorf("nil cache entry")
	}
	if err := json.Unmarshal(e.Value, &v); err != nil {
		return v, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return v, nil
}
