package tokenizer

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token types reported to participle. EOF keeps participle's own value.
const (
	CodeToken lexer.TokenType = iota + 1
	CommentToken
	KeywordToken
)

// Definition adapts the tokenizer to participle's lexer.Definition so a
// participle grammar can be layered over Rustx spans.
var Definition lexer.Definition = definition{}

type definition struct{}

func (definition) Symbols() map[string]lexer.TokenType {
	return map[string]lexer.TokenType{
		"EOF":     lexer.EOF,
		"Code":    CodeToken,
		"Comment": CommentToken,
		"Keyword": KeywordToken,
	}
}

func (d definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return d.LexString(filename, string(data))
}

func (definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return &participleLexer{
		tokenizer: New(input, 0, len(input)),
		source:    input,
		pos:       lexer.Position{Filename: filename, Line: 1, Column: 1},
	}, nil
}

type participleLexer struct {
	tokenizer *Tokenizer
	source    string
	pos       lexer.Position
}

func (l *participleLexer) Next() (lexer.Token, error) {
	span, ok := l.tokenizer.Next()
	if !ok {
		return lexer.EOFToken(l.pos), nil
	}

	text := span.Text(l.source)
	tok := lexer.Token{
		Type:  tokenType(span.Kind),
		Value: text,
		Pos:   l.pos,
	}
	l.advance(text)
	return tok, nil
}

// advance moves the cursor position past text.
func (l *participleLexer) advance(text string) {
	l.pos.Offset += len(text)
	for _, r := range text {
		if r == '\n' {
			l.pos.Line++
			l.pos.Column = 1
			continue
		}
		l.pos.Column++
	}
}

func tokenType(k Kind) lexer.TokenType {
	switch k {
	case LineComment:
		return CommentToken
	case Keyword:
		return KeywordToken
	default:
		return CodeToken
	}
}

// KindOf maps a participle token type back to a span kind.
func KindOf(tt lexer.TokenType) Kind {
	switch tt {
	case CommentToken:
		return LineComment
	case KeywordToken:
		return Keyword
	default:
		return Code
	}
}
