// Package ckv implements parsing, querying, surgical mutation and
// serialization of the ckv configuration format.
//
// A ckv document is a sequence of physical lines. A key line introduces
// an entry:
//
//	key=value
//
// Tab-indented continuation lines extend the previous entry's value with
// embedded newlines:
//
//	key=first line
//		second line
//		third line
//
// An empty value after '=' is a valid empty string. Blank lines are
// preserved positionally but carry no meaning. There is no comment
// syntax, no quoting and no escape sequences: the first '=' on a key
// line splits key from value, and everything after it is free text.
//
// The parsed Document keeps an ordered record of every physical line, so
// rendering a parsed document reproduces its source byte for byte, and a
// Set or Remove touches exactly the target entry's lines and nothing
// else. Parsing stops at the first syntax error with a ParseError
// carrying the 1-based line number.
package ckv
