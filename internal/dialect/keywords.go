package dialect

import "sort"

// keywords is the word table highlighted by the tokenizer. It is never
// written after package init; callers go through IsKeyword and Keywords.
var keywords = map[string]struct{}{
	// logical operators
	"and": {},
	"or":  {},
	"not": {},
	"xor": {},

	// boolean and null literals
	"true":  {},
	"false": {},
	"yes":   {},
	"no":    {},
	"empty": {},
	"None":  {},
	"nil":   {},
	"null":  {},
	"ø":     {},

	// comparison words
	"eq": {},
	"ne": {},
	"lt": {},
	"le": {},
	"gt": {},
	"ge": {},

	// imports and definitions
	"include":  {},
	"require":  {},
	"import":   {},
	"def":      {},
	"define":   {},
	"fun":      {},
	"function": {},
}

// IsKeyword reports whether word is in the keyword table. Matching is
// case-sensitive.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Keywords returns a sorted copy of the keyword table.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
