package comment

import "strings"

type EditKind int

const (
	Insert EditKind = iota
	Delete
)

func (k EditKind) String() string {
	if k == Delete {
		return "DELETE"
	}
	return "INSERT"
}

// Edit is a single insertion or deletion at a byte offset of the buffer
// the edit was computed against.
type Edit struct {
	Offset int
	Kind   EditKind
	Text   string // inserted text, for Insert
	Length int    // bytes removed, for Delete
}

// End returns the offset one past the last byte the edit replaces.
func (e Edit) End() int {
	if e.Kind == Delete {
		return e.Offset + e.Length
	}
	return e.Offset
}

// Apply applies edits to buf in the order given. Edits produced by Toggle
// are ordered by descending offset, so each one still addresses the
// original text when it is applied. Out-of-range edits are clamped.
func Apply(buf string, edits []Edit) string {
	for _, e := range edits {
		start := min(max(e.Offset, 0), len(buf))
		switch e.Kind {
		case Insert:
			buf = buf[:start] + e.Text + buf[start:]
		case Delete:
			end := min(max(e.End(), start), len(buf))
			buf = buf[:start] + buf[end:]
		}
	}
	return buf
}

// CommentLine inserts Prefix after the line's leading spaces and tabs.
// Blank lines are returned unchanged.
func CommentLine(line string) string {
	e, ok := commentEdit(line, 0)
	if !ok {
		return line
	}
	return Apply(line, []Edit{e})
}

// UncommentLine removes the line's comment marker, if it has one.
func UncommentLine(line string) string {
	e, ok := uncommentEdit(line, 0)
	if !ok {
		return line
	}
	return Apply(line, []Edit{e})
}

func commentEdit(line string, lineStart int) (Edit, bool) {
	if IsBlank(line) {
		return Edit{}, false
	}
	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	return Edit{Offset: lineStart + indent, Kind: Insert, Text: Prefix}, true
}

func uncommentEdit(line string, lineStart int) (Edit, bool) {
	if IsBlank(line) {
		return Edit{}, false
	}
	start, end, ok := markerRange(line)
	if !ok {
		return Edit{}, false
	}
	return Edit{Offset: lineStart + start, Kind: Delete, Length: end - start}, true
}
