package ckv

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseSimpleMap(t *testing.T) {
	doc, err := ParseString("name=Alice\nage=30")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	want := map[string]string{"name": "Alice", "age": "30"}
	if got := doc.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestParseMultilineValue(t *testing.T) {
	doc, err := ParseString("a=x\n\ty\n\tz")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	val, err := doc.Value("a")
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if val != "x\ny\nz" {
		t.Errorf("Value = %q, want %q", val, "x\ny\nz")
	}
}

func TestParseEmptyValue(t *testing.T) {
	doc, err := ParseString("key3=\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	val, err := doc.Value("key3")
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if val != "" {
		t.Errorf("Value = %q, want empty string", val)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantErr  error
	}{
		{"equals without key", "=oops", 1, ErrEqualToWithoutAKey},
		{"stray tab on first line", "\tstray", 1, ErrValueWithoutAKey},
		{"missing equals on second line", "a=1\nnokey", 2, ErrMissingEqualTo},
		{"stray tab after blanks only", "\n\n\n\n\tstray", 5, ErrValueWithoutAKey},
		{"error after valid entries", "a=1\nb=2\n=3", 3, ErrEqualToWithoutAKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := ParseString(tc.input)
			if doc != nil {
				t.Error("no partial document may be returned on failure")
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseString = %v, want ParseError", err)
			}
			if perr.Line != tc.wantLine {
				t.Errorf("Line = %d, want %d", perr.Line, tc.wantLine)
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseBlankDoesNotCloseEntry(t *testing.T) {
	doc, err := ParseString("a=x\n\n\ty\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	val, err := doc.Value("a")
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if val != "x\ny" {
		t.Errorf("Value = %q, want %q", val, "x\ny")
	}
}

func TestParseBlankTerminatesValuesOption(t *testing.T) {
	_, err := ParseString("a=x\n\n\ty\n", BlankTerminatesValues())

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseString = %v, want ParseError", err)
	}
	if perr.Line != 3 {
		t.Errorf("Line = %d, want 3", perr.Line)
	}
	if !errors.Is(err, ErrValueWithoutAKey) {
		t.Errorf("error = %v, want ErrValueWithoutAKey", err)
	}
}

func TestParseRequireEmptyValues(t *testing.T) {
	if _, err := ParseString("a=\nb=\n", RequireEmptyValues()); err != nil {
		t.Fatalf("bare key file should be valid in strict mode: %v", err)
	}

	_, err := ParseString("a=\nb=1\n", RequireEmptyValues())
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseString = %v, want ParseError", err)
	}
	if perr.Line != 2 || !errors.Is(err, ErrTrailingCharsAfterEqualTo) {
		t.Errorf("got line %d err %v, want line 2 ErrTrailingCharsAfterEqualTo", perr.Line, err)
	}
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	doc, err := ParseString("k=first\nother=x\nk=second\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	val, err := doc.Value("k")
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if val != "second" {
		t.Errorf("Value = %q, want %q (last occurrence wins)", val, "second")
	}
	if doc.Len() != 2 {
		t.Errorf("Len = %d, want 2", doc.Len())
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseString("=oops")
	want := "line 1: found '=' without a key"
	if err == nil || err.Error() != want {
		t.Errorf("error message = %q, want %q", err, want)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"key1=value1\n",
		"key1=value1\nkey2=value2\n",
		"a=x\n\ty\n\tz\n",
		"a=x\n\ty\n\tz",
		"key3=\n",
		"a=1\n\nb=2\n\n\nc=3\n",
		"a=x\n\n\ty\n",
		"multi=first\n\t\n\tthird\n",
		"spaced key = spaced value \n",
		"expr=a=b=c\n",
		"no-trailing=newline",
	}

	for _, input := range inputs {
		doc, err := ParseString(input)
		if err != nil {
			t.Errorf("ParseString(%q) failed: %v", input, err)
			continue
		}
		if got := doc.String(); got != input {
			t.Errorf("round trip mismatch:\n in:  %q\n out: %q", input, got)
		}
	}
}

func TestRoundTripPreservesDuplicates(t *testing.T) {
	input := "k=a\nk=b\n"
	doc, err := ParseString(input)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if got := doc.String(); got != input {
		t.Errorf("String() = %q, want %q", got, input)
	}
}

func TestParseReader(t *testing.T) {
	doc, err := Parse(strings.NewReader("name=Alice\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	val, err := doc.Value("name")
	if err != nil || val != "Alice" {
		t.Errorf("Value = %q, %v, want Alice", val, err)
	}
}
