package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKeyword(t *testing.T) {
	for _, w := range []string{"and", "or", "not", "xor", "None", "ø", "fun", "include"} {
		assert.True(t, IsKeyword(w), w)
	}
	for _, w := range []string{"And", "none", "NULL", "fn", "let", "", "function_"} {
		assert.False(t, IsKeyword(w), w)
	}
}

func TestKeywordsSorted(t *testing.T) {
	words := Keywords()
	require.Len(t, words, len(keywords))
	assert.IsIncreasing(t, words)
}

func TestKeywordsReturnsCopy(t *testing.T) {
	words := Keywords()
	for i := range words {
		words[i] = "changed"
	}

	assert.True(t, IsKeyword("and"))
	assert.False(t, IsKeyword("changed"))
	assert.Contains(t, Keywords(), "and")
}

func TestIdentClasses(t *testing.T) {
	assert.True(t, IsIdentStart('a'))
	assert.True(t, IsIdentStart('_'))
	assert.True(t, IsIdentStart('ø'))
	assert.False(t, IsIdentStart('1'))
	assert.False(t, IsIdentStart('#'))

	assert.True(t, IsIdentPart('1'))
	assert.True(t, IsIdentPart('Z'))
	assert.False(t, IsIdentPart('-'))
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Matches("main.rx"))
	assert.True(t, r.Matches("/src/lib.roo"))
	assert.True(t, r.Matches("script.RUST"))
	assert.True(t, r.Matches("crab.🦀"))
	assert.False(t, r.Matches("main.rs"))
	assert.False(t, r.Matches("Makefile"))
	assert.ElementsMatch(t, DefaultExtensions, r.Extensions())
}

func TestRegistryConfigured(t *testing.T) {
	r := NewRegistry(".RS", " rx ", "")

	assert.Equal(t, []string{"rs", "rx"}, r.Extensions())
	assert.True(t, r.Matches("a.rs"))
	assert.False(t, r.Matches("a.roo"))
}

func TestRegistryMatchesURI(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.MatchesURI("file:///home/me/main.rx"))
	assert.True(t, r.MatchesURI("file:///home/me/crab.%F0%9F%A6%80"))
	assert.False(t, r.MatchesURI("file:///home/me/main.go"))
	assert.False(t, r.MatchesURI("untitled:Untitled-1"))
}

func TestNilRegistryMatchesNothing(t *testing.T) {
	var r *Registry
	assert.False(t, r.Matches("main.rx"))
}
