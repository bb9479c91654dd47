package comment

import (
	"strings"
	"unicode"

	"rustx/internal/dialect"
)

// Prefix is the marker inserted when commenting a line.
const Prefix = "// "

// IsBlank reports whether line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsCommented reports whether line is already a line comment: either a
// "//" comment at any indentation, or a '#' comment indented by at most
// dialect.MaxHashIndent whitespace characters. "#[" is an attribute and
// never counts.
func IsCommented(line string) bool {
	if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "//") {
		return true
	}
	_, _, ok := hashMarker(line)
	return ok
}

// markerRange returns the byte range [start, end) of the comment marker
// that uncommenting line removes, including one trailing space if present.
func markerRange(line string) (start, end int, ok bool) {
	if start, end, ok = slashMarker(line); ok {
		return start, end, true
	}
	return hashMarker(line)
}

func slashMarker(line string) (start, end int, ok bool) {
	i := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
	if !strings.HasPrefix(line[i:], "//") {
		return 0, 0, false
	}
	end = i + 2
	if end < len(line) && line[end] == ' ' {
		end++
	}
	return i, end, true
}

func hashMarker(line string) (start, end int, ok bool) {
	i := 0
	for i < len(line) && i <= dialect.MaxHashIndent && dialect.IsSpace(line[i]) {
		i++
	}
	if i > dialect.MaxHashIndent || i >= len(line) || line[i] != '#' {
		return 0, 0, false
	}
	if isAttribute(line[i:]) {
		return 0, 0, false
	}
	end = i + 1
	if end < len(line) && line[end] == ' ' {
		end++
	}
	return i, end, true
}

// isAttribute reports whether s, which starts with '#', is an attribute
// such as #[test] or #![allow(dead_code)].
func isAttribute(s string) bool {
	rest := strings.TrimLeft(s, "#")
	return strings.HasPrefix(rest, "[") || strings.HasPrefix(rest, "![")
}
