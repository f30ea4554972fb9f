package ckv

import (
	"strings"

	"github.com/MihirLuthra/ckv-file-parser/pkg/core"
)

// Document is the full parsed representation of one ckv source. It
// keeps an ordered record of every physical line plus a derived key
// index and value map. The mapping always holds exactly the keys
// present in the line records; when a key occurs more than once, the
// last occurrence wins.
type Document struct {
	lines        []rawLine
	index        map[string]int    // key -> position of its winning key line
	values       map[string]string // key -> assembled multi-line value
	finalNewline bool
}

// NewDocument returns an empty Document. Rendered output of a document
// built from scratch always ends with a newline.
func NewDocument() *Document {
	return &Document{
		index:        map[string]int{},
		values:       map[string]string{},
		finalNewline: true,
	}
}

// Len returns the number of distinct keys.
func (d *Document) Len() int {
	return len(d.index)
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.index[key]
	return ok
}

// Value returns the value stored under key.
func (d *Document) Value(key string) (string, error) {
	v, ok := d.values[key]
	if !ok {
		return "", &core.KeyNotFoundError{Key: key}
	}
	return v, nil
}

// RequireValue is like Value but rejects entries whose value is the
// empty string, failing with NoValueForKeyError.
func (d *Document) RequireValue(key string) (string, error) {
	v, err := d.Value(key)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", &core.NoValueForKeyError{Key: key}
	}
	return v, nil
}

// Map returns a copy of the key to value mapping.
func (d *Document) Map() map[string]string {
	m := make(map[string]string, len(d.values))
	for k, v := range d.values {
		m[k] = v
	}
	return m
}

// Keys returns every key in document order. A duplicated key is listed
// once, at the position of its winning occurrence.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.index))
	for i, ln := range d.lines {
		if ln.kind == lineKey && d.index[ln.key] == i {
			keys = append(keys, ln.key)
		}
	}
	return keys
}

// Entries returns every entry in document order.
func (d *Document) Entries() []core.Entry {
	entries := make([]core.Entry, 0, len(d.index))
	for i, ln := range d.lines {
		if ln.kind == lineKey && d.index[ln.key] == i {
			entries = append(entries, core.Entry{Key: ln.key, Value: d.values[ln.key]})
		}
	}
	return entries
}

// Set replaces key's value in place, or appends a new entry at the end
// if the key is absent. Only the entry's own key line and continuation
// lines are touched; every other line, including blank lines interleaved
// with the old continuation lines, keeps its content.
func (d *Document) Set(key, value string) error {
	if err := core.ValidateKey(key); err != nil {
		return err
	}

	segs := strings.Split(value, "\n")

	pos, ok := d.index[key]
	if !ok {
		d.lines = append(d.lines, rawLine{kind: lineKey, key: key, segment: segs[0]})
		for _, seg := range segs[1:] {
			d.lines = append(d.lines, rawLine{kind: lineCont, segment: seg})
		}
		d.rebuild()
		return nil
	}

	drop := d.entrySpan(pos)
	next := make([]rawLine, 0, len(d.lines)+len(segs)-len(drop))
	for i, ln := range d.lines {
		if i == pos {
			next = append(next, rawLine{kind: lineKey, key: key, segment: segs[0]})
			for _, seg := range segs[1:] {
				next = append(next, rawLine{kind: lineCont, segment: seg})
			}
			continue
		}
		if drop[i] {
			continue
		}
		next = append(next, ln)
	}
	d.lines = next
	d.rebuild()
	return nil
}

// Remove drops key's entry: exactly its key line and all of its
// continuation lines. Neighbouring blank lines stay where they are.
// Returns KeyNotFoundError if the key is absent.
func (d *Document) Remove(key string) error {
	pos, ok := d.index[key]
	if !ok {
		return &core.KeyNotFoundError{Key: key}
	}

	drop := d.entrySpan(pos)
	next := make([]rawLine, 0, len(d.lines)-len(drop))
	for i, ln := range d.lines {
		if !drop[i] {
			next = append(next, ln)
		}
	}
	d.lines = next
	d.rebuild()
	return nil
}

// entrySpan returns the line positions belonging to the entry whose key
// line sits at pos: the key line itself and every continuation line up
// to the next key line. Blank lines in between are not part of the span.
func (d *Document) entrySpan(pos int) map[int]bool {
	span := map[int]bool{pos: true}
	for j := pos + 1; j < len(d.lines); j++ {
		switch d.lines[j].kind {
		case lineKey:
			return span
		case lineCont:
			span[j] = true
		}
	}
	return span
}

// rebuild rederives the key index and value map from the line records.
// Walking the records in order reproduces the parser's duplicate policy:
// a later occurrence of a key overwrites the earlier one.
func (d *Document) rebuild() {
	d.index = make(map[string]int, len(d.index))
	d.values = make(map[string]string, len(d.values))

	open := ""
	for i, ln := range d.lines {
		switch ln.kind {
		case lineKey:
			d.index[ln.key] = i
			d.values[ln.key] = ln.segment
			open = ln.key
		case lineCont:
			d.values[open] += "\n" + ln.segment
		}
	}
}
