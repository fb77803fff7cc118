// Package session persists per-visitor key-value state — the server-side
// analogue of the original clients' browser local storage. Screens never
// touch storage directly; they go through this narrow interface.
package session

import "context"

// Store is the Session Store contract. Keys are plain strings (see the
// identity package for the legacy key layout); values are strings. A write
// is visible to every subsequent read for the same token.
type Store interface {
	// Get returns the value for key, or "" when unset.
	Get(ctx context.Context, token, key string) (string, error)
	// Set writes key=value for the session.
	Set(ctx context.Context, token, key, value string) error
	// Delete removes a single key.
	Delete(ctx context.Context, token, key string) error
	// Clear removes every key held for the session.
	Clear(ctx context.Context, token string) error
	// Snapshot returns a point-in-time copy of all values for the session.
	Snapshot(ctx context.Context, token string) (Values, error)
}

// Values is a Session Store snapshot. It satisfies identity.Getter, so
// identity resolution stays pure over a fixed view of the store.
type Values map[string]string

// Get returns the value for key, or "" when unset.
func (v Values) Get(key string) string { return v[key] }
