package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"rustx/internal/dialect"
)

type spanText struct {
	Kind Kind
	Text string
}

func scan(src string) []spanText {
	var out []spanText
	for _, s := range Tokenize(src) {
		out = append(out, spanText{s.Kind, s.Text(src)})
	}
	return out
}

func TestKeywordsAndCode(t *testing.T) {
	got := scan("a and b")
	assert.Equal(t, []spanText{
		{Code, "a "},
		{Keyword, "and"},
		{Code, " "},
		{Code, "b"},
	}, got)
}

func TestIdentifiersContainingKeywordsAreCode(t *testing.T) {
	for _, src := range []string{"nil_value", "andy", "notify", "None2", "_or"} {
		got := scan(src)
		require.Len(t, got, 1, src)
		assert.Equal(t, Code, got[0].Kind, src)
	}
}

func TestNonASCIIKeyword(t *testing.T) {
	assert.Equal(t, []spanText{
		{Code, "x = "},
		{Keyword, "ø"},
	}, scan("x = ø"))
}

func TestHashComments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []spanText
	}{
		{
			name: "trailing comment",
			src:  "x = 1 # note\ny",
			want: []spanText{{Code, "x = 1 "}, {LineComment, "# note"}, {Code, "\n"}, {Code, "y"}},
		},
		{
			name: "column zero",
			src:  "# old note",
			want: []spanText{{LineComment, "# old note"}},
		},
		{
			name: "two space indent",
			src:  "  # indented",
			want: []spanText{{Code, "  "}, {LineComment, "# indented"}},
		},
		{
			name: "tab indent",
			src:  "\t# tabbed",
			want: []spanText{{Code, "\t"}, {LineComment, "# tabbed"}},
		},
		{
			name: "space hash space anywhere",
			src:  "    # deep",
			want: []spanText{{Code, "    "}, {LineComment, "# deep"}},
		},
		{
			name: "attribute",
			src:  "#[derive(Debug)]",
			want: []spanText{{Code, "#["}, {Code, "derive("}, {Code, "Debug)]"}},
		},
		{
			name: "hash glued to code",
			src:  "a# b",
			want: []spanText{{Code, "a# "}, {Code, "b"}},
		},
		{
			name: "hash without space",
			src:  "#note",
			want: []spanText{{Code, "#"}, {Code, "note"}},
		},
		{
			name: "deep tab indent",
			src:  "\t\t\t# x",
			want: []spanText{{Code, "\t\t\t# "}, {Code, "x"}},
		},
		{
			name: "comment keeps keywords",
			src:  "# true and false",
			want: []spanText{{LineComment, "# true and false"}},
		},
		{
			name: "second line",
			src:  "a\n# b",
			want: []spanText{{Code, "a\n"}, {LineComment, "# b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scan(tt.src))
		})
	}
}

func TestSlashCommentsAreLeftToTheHost(t *testing.T) {
	assert.Equal(t, []spanText{
		{Code, "// "},
		{Keyword, "not"},
		{Code, " "},
		{Keyword, "and"},
	}, scan("// not and"))
}

func TestSubRange(t *testing.T) {
	src := "let a = true\nlet b = false"
	var got []Span
	for s := range Spans(src, 13, len(src)) {
		got = append(got, s)
	}
	assert.Equal(t, []Span{
		{Start: 13, End: 17, Kind: Code},
		{Start: 17, End: 21, Kind: Code},
		{Start: 21, End: 26, Kind: Keyword},
	}, got)
}

func TestRangeClamping(t *testing.T) {
	assert.Empty(t, Tokenize(""))

	var got []Span
	for s := range Spans("abc", -5, 99) {
		got = append(got, s)
	}
	assert.Equal(t, []Span{{Start: 0, End: 3, Kind: Code}}, got)

	for range Spans("abc", 2, 1) {
		t.Fatal("reversed range should be empty")
	}
}

func TestHashAtRangeEdge(t *testing.T) {
	// The scanned range ends right after '#', so there is no following space.
	src := "x # y"
	var kinds []Kind
	for s := range Spans(src, 0, 3) {
		kinds = append(kinds, s.Kind)
	}
	assert.NotContains(t, kinds, LineComment)
}

func TestResetRestarts(t *testing.T) {
	src := "a or b # c"
	tok := New(src, 0, len(src))

	var first []Span
	for s, ok := tok.Next(); ok; s, ok = tok.Next() {
		first = append(first, s)
	}
	_, ok := tok.Next()
	require.False(t, ok)

	tok.Reset()
	var second []Span
	for s, ok := tok.Next(); ok; s, ok = tok.Next() {
		second = append(second, s)
	}
	assert.Equal(t, first, second)
}

func TestSpanCoverage(t *testing.T) {
	alphabet := []rune{'a', 'n', 'd', 'o', 'r', '_', '1', ' ', ' ', '\t', '\n', '#', '[', ']', '/', 'ø', '🦀'}

	rapid.Check(t, func(t *rapid.T) {
		src := rapid.StringOf(rapid.SampledFrom(alphabet)).Draw(t, "src")
		start := rapid.IntRange(0, len(src)).Draw(t, "start")
		end := rapid.IntRange(start, len(src)).Draw(t, "end")

		var b strings.Builder
		pos := start
		for s := range Spans(src, start, end) {
			if s.Start != pos {
				t.Fatalf("gap or overlap at %d: span %+v", pos, s)
			}
			if s.Len() <= 0 {
				t.Fatalf("empty span %+v", s)
			}
			text := s.Text(src)
			switch s.Kind {
			case LineComment:
				if text[0] != '#' || strings.Contains(text, "\n") {
					t.Fatalf("bad comment span %q", text)
				}
			case Keyword:
				if !dialect.IsKeyword(text) {
					t.Fatalf("bad keyword span %q", text)
				}
			}
			b.WriteString(text)
			pos = s.End
		}
		if pos != end {
			t.Fatalf("scan stopped at %d, want %d", pos, end)
		}
		if b.String() != src[start:end] {
			t.Fatalf("reconstructed %q, want %q", b.String(), src[start:end])
		}
	})
}
