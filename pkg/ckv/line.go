package ckv

import (
	"strings"

	"github.com/MihirLuthra/ckv-file-parser/pkg/core"
)

// lineKind categorizes one physical line of a ckv document.
type lineKind int

const (
	lineBlank lineKind = iota
	lineKey
	lineCont
)

// rawLine is the classification result for one physical line, trailing
// newline already stripped. The Document stores these verbatim so that
// untouched lines re-serialize byte for byte.
type rawLine struct {
	kind    lineKind
	key     string // key lines only
	segment string // value segment of a key or continuation line
}

// classify inspects one physical line. A leading tab marks a
// continuation line whose segment is everything after that single tab;
// an empty segment is still valid. Otherwise the first '=' splits key
// from value and any further '=' belongs to the value. Only a byte-empty
// line is blank: a whitespace-only line is treated as a key line
// candidate.
func classify(s string) (rawLine, error) {
	if s == "" {
		return rawLine{kind: lineBlank}, nil
	}
	if s[0] == '\t' {
		return rawLine{kind: lineCont, segment: s[1:]}, nil
	}

	eq := strings.IndexByte(s, '=')
	if eq < 0 {
		return rawLine{}, ErrMissingEqualTo
	}
	if eq == 0 {
		return rawLine{}, ErrEqualToWithoutAKey
	}

	key := s[:eq]
	if i := strings.IndexByte(key, '\t'); i >= 0 {
		return rawLine{}, &core.InvalidCharacterError{Char: key[i]}
	}

	return rawLine{kind: lineKey, key: key, segment: s[eq+1:]}, nil
}
