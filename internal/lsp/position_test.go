package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestLineIndexRoundTrip(t *testing.T) {
	li := newLineIndex("ab\n🦀x\nø")

	tests := []struct {
		offset int
		pos    protocol.Position
	}{
		{0, protocol.Position{Line: 0, Character: 0}},
		{2, protocol.Position{Line: 0, Character: 2}},
		{3, protocol.Position{Line: 1, Character: 0}},
		{7, protocol.Position{Line: 1, Character: 2}},
		{8, protocol.Position{Line: 1, Character: 3}},
		{9, protocol.Position{Line: 2, Character: 0}},
		{11, protocol.Position{Line: 2, Character: 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.pos, li.position(tt.offset), "position(%d)", tt.offset)
		assert.Equal(t, tt.offset, li.offset(tt.pos), "offset(%v)", tt.pos)
	}
}

func TestLineIndexClamps(t *testing.T) {
	li := newLineIndex("ab\n🦀x")

	assert.Equal(t, 2, li.offset(protocol.Position{Line: 0, Character: 40}))
	assert.Equal(t, len(li.text), li.offset(protocol.Position{Line: 9, Character: 0}))
	// Character 1 is inside the crab's surrogate pair.
	assert.Equal(t, 3, li.offset(protocol.Position{Line: 1, Character: 1}))
	assert.Equal(t, protocol.Position{Line: 1, Character: 3}, li.position(100))
}

func TestEncodeSemanticTokens(t *testing.T) {
	data := encodeSemanticTokens([]SemanticToken{
		{Line: 1, StartChar: 2, Length: 6, TokenType: 1},
		{Line: 2, StartChar: 13, Length: 4},
		{Line: 2, StartChar: 18, Length: 3},
	})
	assert.Equal(t, []uint32{
		1, 2, 6, 1, 0,
		1, 13, 4, 0, 0,
		0, 5, 3, 0, 0,
	}, data)
}
