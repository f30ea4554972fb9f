package ckv

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the document back out in the ckv line format. The whole
// document is buffered first and written with a single call, so a sink
// failure leaves no partial output behind it; such failures wrap
// ErrInvalidOutputStream.
//
// For any document produced by Parse, Render reproduces the original
// input byte for byte (duplicate keys included), which makes Render the
// exact left inverse of Parse on valid input.
func (d *Document) Render(w io.Writer) error {
	if _, err := io.WriteString(w, d.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutputStream, err)
	}
	return nil
}

// String renders the document to a string. Each key line is emitted as
// `key=segment`, each continuation line as one tab followed by its
// segment, and blank placeholders as empty lines. The presence or
// absence of a trailing newline in the source is preserved.
func (d *Document) String() string {
	var b strings.Builder
	for i, ln := range d.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch ln.kind {
		case lineKey:
			b.WriteString(ln.key)
			b.WriteByte('=')
			b.WriteString(ln.segment)
		case lineCont:
			b.WriteByte('\t')
			b.WriteString(ln.segment)
		}
	}
	if len(d.lines) > 0 && d.finalNewline {
		b.WriteByte('\n')
	}
	return b.String()
}
