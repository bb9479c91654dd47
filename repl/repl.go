// Package repl reads Rustx lines interactively and prints how they are
// highlighted, or toggles them with the :toggle command.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rustx/internal/comment"
	"rustx/internal/tokenizer"
)

const PROMPT = ">> "

const toggleCmd = ":toggle "

// Start runs the loop until in is exhausted.
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if rest, ok := strings.CutPrefix(line, toggleCmd); ok {
			res := comment.Toggle(rest, comment.Request{})
			fmt.Fprintln(out, comment.Apply(rest, res.Edits))
			continue
		}

		for span := range tokenizer.Spans(line, 0, len(line)) {
			fmt.Fprintf(out, "%3d..%-3d %-12s %s\n",
				span.Start, span.End, span.Kind, strconv.Quote(span.Text(line)))
		}
	}
}
