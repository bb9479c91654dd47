// Package comment implements the toggle-line-comment command for Rustx
// buffers. A toggle either comments or uncomments every non-blank line of
// a range; which one is decided once for the whole range.
package comment

// Selection is a byte range of the buffer. Start may exceed End.
type Selection struct {
	Start int
	End   int
}

// Request describes where the toggle applies: the lines spanned by
// Selection when it is set, otherwise CaretLine. An empty Selection
// acts as a caret at its offset.
type Request struct {
	Selection *Selection
	CaretLine int
}

type Result struct {
	StartLine    int
	EndLine      int
	AllCommented bool
	// Edits are ordered from the last line to the first.
	Edits []Edit
}

// Toggle computes the edits that toggle line comments for req.
func Toggle(buf string, req Request) Result {
	lines := SplitLines(buf)

	var startLine, endLine int
	switch sel := req.Selection; {
	case sel != nil && sel.Start != sel.End:
		start, end := min(sel.Start, sel.End), max(sel.Start, sel.End)
		startLine, endLine = LineOf(lines, start), LineOf(lines, end)
	case sel != nil:
		startLine = LineOf(lines, sel.Start)
		endLine = startLine
	default:
		startLine = min(max(req.CaretLine, 0), len(lines)-1)
		endLine = startLine
	}

	return toggleLines(buf, lines, startLine, endLine)
}

// ToggleLines toggles the inclusive line range [startLine, endLine].
// Line numbers are clamped to the buffer.
func ToggleLines(buf string, startLine, endLine int) Result {
	lines := SplitLines(buf)
	if startLine > endLine {
		startLine, endLine = endLine, startLine
	}
	last := len(lines) - 1
	return toggleLines(buf, lines, min(max(startLine, 0), last), min(max(endLine, 0), last))
}

func toggleLines(buf string, lines []Line, startLine, endLine int) Result {
	res := Result{
		StartLine:    startLine,
		EndLine:      endLine,
		AllCommented: true,
	}

	for _, l := range lines[startLine : endLine+1] {
		text := l.Text(buf)
		if !IsBlank(text) && !IsCommented(text) {
			res.AllCommented = false
			break
		}
	}

	for i := endLine; i >= startLine; i-- {
		l := lines[i]
		text := l.Text(buf)

		var (
			e  Edit
			ok bool
		)
		if res.AllCommented {
			e, ok = uncommentEdit(text, l.Start)
		} else {
			e, ok = commentEdit(text, l.Start)
		}
		if ok {
			res.Edits = append(res.Edits, e)
		}
	}

	return res
}
