package ckv

// options holds parser configuration.
type options struct {
	requireEmptyValues bool
	blankTerminates    bool
}

// Option defines a functional option for the parser.
type Option func(*options)

// defaultOptions returns the default parser configuration.
func defaultOptions() *options {
	return &options{}
}

// RequireEmptyValues makes the parser reject key lines that carry a
// value segment after '='. Intended for key-existence files where only
// bare `key=` lines are allowed; violations fail with
// ErrTrailingCharsAfterEqualTo.
func RequireEmptyValues() Option {
	return func(o *options) {
		o.requireEmptyValues = true
	}
}

// BlankTerminatesValues makes a blank line close the currently open
// entry, so a continuation line after a blank fails with
// ErrValueWithoutAKey instead of extending the value. By default blank
// lines are transparent and continuation may resume after them.
func BlankTerminatesValues() Option {
	return func(o *options) {
		o.blankTerminates = true
	}
}
