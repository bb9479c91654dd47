package lsp

import (
	"rustx/internal/comment"
	"rustx/internal/tokenizer"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions, StartChar and Length in UTF-16 units
// TokenType is an index into SemanticTokenTypes
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens tokenizes text[start:end] and keeps the spans an
// editor paints: keywords and hash comments. Code spans are not reported.
// start is moved back to its line start so the indentation rules for '#'
// see the whole line.
func collectSemanticTokens(li *lineIndex, start, end int) []SemanticToken {
	var tokens []SemanticToken

	start = lineStart(li, start)
	for span := range tokenizer.Spans(li.text, start, end) {
		var tokenType string
		switch span.Kind {
		case tokenizer.Keyword:
			tokenType = "keyword"
		case tokenizer.LineComment:
			tokenType = "comment"
		default:
			continue
		}
		tokens = append(tokens, makeToken(li, span, tokenType))
	}

	return tokens
}

// makeToken creates a semantic token for a span. Spans never cross a
// newline, so a single position pair describes them.
func makeToken(li *lineIndex, span tokenizer.Span, tokenType string) SemanticToken {
	pos := li.position(span.Start)
	return SemanticToken{
		Line:      uint32(pos.Line),
		StartChar: uint32(pos.Character),
		Length:    uint32(utf16Len(span.Text(li.text))),
		TokenType: indexOf(tokenType, SemanticTokenTypes),
	}
}

// encodeSemanticTokens encodes tokens into LSP wire format (using
// delta-line, delta-start compression).
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

func lineStart(li *lineIndex, offset int) int {
	if offset <= 0 {
		return 0
	}
	return li.lines[comment.LineOf(li.lines, offset)].Start
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
