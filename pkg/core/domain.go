// Entry is the central entity of the domain.
package core

import "strings"

// Entry is one parsed key/value unit of a ckv document.
// The value may span multiple physical lines; embedded newlines mark
// where tab-indented continuation lines appeared in the source.
type Entry struct {
	Key   string
	Value string
}

// ValidateKey checks whether key may introduce an entry.
// Keys must be non-empty and must not contain '=', tab or newline,
// which the format reserves for structure.
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if i := strings.IndexAny(key, "=\t\n"); i >= 0 {
		return &InvalidCharacterError{Char: key[i]}
	}
	return nil
}

// EventType represents the kind of change observed on a watched source.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventRemove EventType = "REMOVE"
)

// Event represents an observed change of a watched source.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}
