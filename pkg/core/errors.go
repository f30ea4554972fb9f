package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyKey = errors.New("key cannot be empty")
)

// KeyNotFoundError is returned when a key is absent from a document.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%q: key not found", e.Key)
}

// NoValueForKeyError is returned by strict lookups when a key exists but
// its value is empty.
type NoValueForKeyError struct {
	Key string
}

func (e *NoValueForKeyError) Error() string {
	return fmt.Sprintf("%q: no value found for key", e.Key)
}

// InvalidCharacterError is returned when a key contains a character the
// format reserves for structure ('=' or tab).
type InvalidCharacterError struct {
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q", e.Char)
}
