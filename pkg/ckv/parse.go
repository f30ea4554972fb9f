package ckv

import (
	"io"
	"strings"
)

// Parse reads one whole ckv document from r. The full input is consumed
// before anything is returned; there is no streaming or partial parse.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data), opts...)
}

// ParseString parses one whole ckv document.
//
// The parser walks physical lines with a 1-based counter, tracking the
// currently open entry. A key line closes the previous entry and opens
// a new one; a continuation line extends the open entry; a blank line
// is kept as a positional placeholder and, by default, does not close
// the open entry. On the first syntax error parsing stops and returns a
// ParseError with that line's number; no partial Document is returned.
//
// Duplicate keys are accepted: the last occurrence wins in the mapping,
// while every physical line is retained for faithful re-serialization.
func ParseString(text string, opts ...Option) (*Document, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	d := NewDocument()
	if text == "" {
		d.finalNewline = false
		return d, nil
	}
	d.finalNewline = strings.HasSuffix(text, "\n")

	raw := strings.Split(text, "\n")
	if d.finalNewline {
		raw = raw[:len(raw)-1]
	}

	open := false
	for n, s := range raw {
		ln, err := classify(s)
		if err != nil {
			return nil, &ParseError{Line: n + 1, Err: err}
		}

		switch ln.kind {
		case lineBlank:
			if o.blankTerminates {
				open = false
			}
		case lineCont:
			if !open {
				return nil, &ParseError{Line: n + 1, Err: ErrValueWithoutAKey}
			}
		case lineKey:
			if o.requireEmptyValues && ln.segment != "" {
				return nil, &ParseError{Line: n + 1, Err: ErrTrailingCharsAfterEqualTo}
			}
			open = true
		}
		d.lines = append(d.lines, ln)
	}

	d.rebuild()
	return d, nil
}
