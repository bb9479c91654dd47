// Package dialect holds the pieces of the Rustx dialect shared by the
// tokenizer and the comment toggler: character classes, the keyword
// table and the registry of file extensions the dialect applies to.
package dialect

import "unicode"

func IsIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func IsIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// IsIndentSpace reports whether b belongs to a line's indentation run.
func IsIndentSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// IsSpace matches the ASCII whitespace class used by the comment
// predicates: space, tab, vertical tab, form feed and carriage return.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}

// MaxHashIndent is the widest indentation a '#' comment marker may have.
const MaxHashIndent = 2
