package comment

import (
	"sort"
	"strings"
)

// Line locates one line of a buffer. Start and End are byte offsets;
// End excludes the terminating newline.
type Line struct {
	Index int
	Start int
	End   int
}

func (l Line) Text(buf string) string {
	return buf[l.Start:l.End]
}

// SplitLines returns the lines of buf. There is always at least one line,
// and a trailing newline produces a final empty line.
func SplitLines(buf string) []Line {
	lines := make([]Line, 0, strings.Count(buf, "\n")+1)
	start := 0
	for {
		i := strings.IndexByte(buf[start:], '\n')
		if i < 0 {
			lines = append(lines, Line{Index: len(lines), Start: start, End: len(buf)})
			return lines
		}
		lines = append(lines, Line{Index: len(lines), Start: start, End: start + i})
		start += i + 1
	}
}

// LineOf returns the index of the line containing offset. Offsets are
// clamped to the buffer; an offset on a newline belongs to the line the
// newline terminates.
func LineOf(lines []Line, offset int) int {
	if len(lines) == 0 {
		return 0
	}
	i := sort.Search(len(lines), func(i int) bool { return lines[i].End >= offset })
	if i >= len(lines) {
		return len(lines) - 1
	}
	return i
}
