package core

import "context"

// Repository defines the contract for reading and mutating one ckv
// source. Adhering to this interface keeps the core independent of where
// the bytes live (filesystem, memory, network blob).
//
// Implementations re-read the source on every call: there is no
// cross-call cache, so a successful result always reflects the bytes at
// call time. Mutations rewrite the whole source; untouched entries keep
// their original formatting byte for byte.
type Repository interface {
	// Map parses the whole source into its key to value mapping.
	Map(ctx context.Context) (map[string]string, error)

	// Value returns the value stored under key, or KeyNotFoundError.
	Value(ctx context.Context, key string) (string, error)

	// SetValue replaces key's value in place, or appends a new entry at
	// the end of the source, and rewrites the whole source.
	SetValue(ctx context.Context, key, value string) error

	// RemoveKey drops key's entry (its key line and all of its
	// continuation lines) and rewrites the whole source. Returns
	// KeyNotFoundError if the key is absent; nothing is written then.
	RemoveKey(ctx context.Context, key string) error

	// Entries returns every entry in document order.
	Entries(ctx context.Context) ([]Entry, error)
}

// Watchable defines repositories that can report source changes.
type Watchable interface {
	// Watch emits an event each time the underlying source changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
