// Package tokenizer classifies Rustx source into code, line-comment and
// keyword spans for highlighting.
//
// The scanner makes one forward pass over a byte range. It never fails:
// anything it does not recognise is reported as code.
package tokenizer

import (
	"iter"
	"unicode/utf8"

	"rustx/internal/dialect"
)

type Kind int

const (
	Code Kind = iota
	LineComment
	Keyword
)

func (k Kind) String() string {
	switch k {
	case Code:
		return "CODE"
	case LineComment:
		return "LINE_COMMENT"
	case Keyword:
		return "KEYWORD"
	default:
		return "UNKNOWN"
	}
}

// Span is a classified byte range [Start, End) of the scanned buffer.
type Span struct {
	Start int
	End   int
	Kind  Kind
}

func (s Span) Text(buf string) string {
	return buf[s.Start:s.End]
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Tokenizer scans buf[start:end]. Offsets in the produced spans are
// relative to buf, not to start.
type Tokenizer struct {
	source  string
	start   int // first byte of the scanned range
	end     int // one past the last byte of the scanned range
	current int
}

// New returns a tokenizer over buf[start:end]. Out-of-range bounds are
// clamped; a reversed range scans nothing.
func New(buf string, start, end int) *Tokenizer {
	start = clamp(start, 0, len(buf))
	end = clamp(end, start, len(buf))
	return &Tokenizer{
		source:  buf,
		start:   start,
		end:     end,
		current: start,
	}
}

// Reset rewinds the tokenizer to the beginning of its range.
func (t *Tokenizer) Reset() {
	t.current = t.start
}

// Next returns the next span, or false once the range is exhausted.
func (t *Tokenizer) Next() (Span, bool) {
	if t.isAtEnd() {
		return Span{}, false
	}

	tokenStart := t.current

	if t.isHashCommentStart(t.current) {
		for !t.isAtEnd() && t.source[t.current] != '\n' {
			t.current++
		}
		return Span{Start: tokenStart, End: t.current, Kind: LineComment}, true
	}

	if r, _ := t.peekRune(); dialect.IsIdentStart(r) {
		t.scanIdentifier()
		if dialect.IsKeyword(t.source[tokenStart:t.current]) {
			return Span{Start: tokenStart, End: t.current, Kind: Keyword}, true
		}
		// Plain identifiers run on into the surrounding code.
	}

	t.scanCode()
	return Span{Start: tokenStart, End: t.current, Kind: Code}, true
}

// scanCode advances to the next newline (consumed), hash comment or
// identifier start.
func (t *Tokenizer) scanCode() {
	for !t.isAtEnd() {
		if t.source[t.current] == '\n' {
			t.current++
			return
		}
		if t.isHashCommentStart(t.current) {
			return
		}
		r, size := t.peekRune()
		if dialect.IsIdentStart(r) {
			return
		}
		t.current += size
	}
}

func (t *Tokenizer) scanIdentifier() {
	_, size := t.peekRune()
	t.current += size
	for !t.isAtEnd() {
		r, size := t.peekRune()
		if !dialect.IsIdentPart(r) {
			return
		}
		t.current += size
	}
}

// isHashCommentStart reports whether a '#' line comment begins at pos:
// either " # " in the middle of a line, or "# " indented by at most
// dialect.MaxHashIndent spaces or tabs.
func (t *Tokenizer) isHashCommentStart(pos int) bool {
	if t.source[pos] != '#' || pos+1 >= t.end || t.source[pos+1] != ' ' {
		return false
	}
	if pos > t.start && t.source[pos-1] == ' ' {
		return true
	}

	lineStart := pos
	for lineStart > t.start && pos-lineStart <= dialect.MaxHashIndent && t.source[lineStart-1] != '\n' {
		lineStart--
	}
	if pos-lineStart > dialect.MaxHashIndent {
		return false
	}
	for i := lineStart; i < pos; i++ {
		if !dialect.IsIndentSpace(t.source[i]) {
			return false
		}
	}
	return true
}

func (t *Tokenizer) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(t.source[t.current:t.end])
}

func (t *Tokenizer) isAtEnd() bool {
	return t.current >= t.end
}

// Spans returns a lazy sequence of the spans covering buf[start:end].
// Each iteration starts a fresh scan from start.
func Spans(buf string, start, end int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		t := New(buf, start, end)
		for {
			span, ok := t.Next()
			if !ok || !yield(span) {
				return
			}
		}
	}
}

// Tokenize scans the whole buffer.
func Tokenize(buf string) []Span {
	var spans []Span
	for span := range Spans(buf, 0, len(buf)) {
		spans = append(spans, span)
	}
	return spans
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
