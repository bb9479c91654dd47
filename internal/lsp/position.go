package lsp

import (
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"rustx/internal/comment"
)

// lineIndex converts between byte offsets and LSP positions, whose
// character field counts UTF-16 code units.
type lineIndex struct {
	text  string
	lines []comment.Line
}

func newLineIndex(text string) *lineIndex {
	return &lineIndex{text: text, lines: comment.SplitLines(text)}
}

func (li *lineIndex) position(offset int) protocol.Position {
	offset = min(max(offset, 0), len(li.text))
	line := li.lines[comment.LineOf(li.lines, offset)]
	return protocol.Position{
		Line:      protocol.UInteger(line.Index),
		Character: protocol.UInteger(utf16Len(li.text[line.Start:offset])),
	}
}

// offset returns the byte offset of pos. Positions past the end of a line
// or of the document are clamped.
func (li *lineIndex) offset(pos protocol.Position) int {
	if int(pos.Line) >= len(li.lines) {
		return len(li.text)
	}
	line := li.lines[pos.Line]
	want := int(pos.Character)

	units := 0
	for i, r := range li.text[line.Start:line.End] {
		if units >= want {
			return line.Start + i
		}
		units += utf16.RuneLen(r)
		if units > want {
			// Inside a surrogate pair: snap to the rune start.
			return line.Start + i
		}
	}
	return line.End
}

func utf16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
