package ckv

import (
	"errors"
	"fmt"
)

// Syntax errors reported while reading a document. Each one surfaces
// wrapped in a ParseError carrying the offending line number.
var (
	// ErrEqualToWithoutAKey: a line starts with '=', so there is no key
	// before the separator.
	ErrEqualToWithoutAKey = errors.New("found '=' without a key")

	// ErrMissingEqualTo: a non-blank line has no '=' at all.
	ErrMissingEqualTo = errors.New("key should be followed by a '='")

	// ErrTrailingCharsAfterEqualTo: a key line carries a value segment
	// where none is allowed (RequireEmptyValues mode).
	ErrTrailingCharsAfterEqualTo = errors.New("trailing characters after '='")

	// ErrValueWithoutAKey: a tab-indented continuation line appears with
	// no entry open to receive it.
	ErrValueWithoutAKey = errors.New("tab found with no preceding key")

	// ErrInvalidOutputStream: the output sink rejected the rendered
	// document.
	ErrInvalidOutputStream = errors.New("invalid output stream")
)

// ParseError wraps a syntax error with the 1-based number of the
// physical line it was found on. Parsing stops at the first error, so a
// failed parse yields exactly one ParseError and no partial Document.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
