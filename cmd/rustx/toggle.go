package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"rustx/internal/comment"
)

func newToggleCmd(a *app) *cobra.Command {
	var (
		line      int
		lineRange string
		write     bool
		showDiff  bool
	)

	cmd := &cobra.Command{
		Use:   "toggle FILE",
		Short: "Toggle line comments on a line or range of lines",
		Long: `Comment or uncomment lines of FILE the way the editor command does:
if every non-blank line in the range is already a comment the range is
uncommented, otherwise every non-blank line is commented. Line numbers
start at 1.`,
		Example: `  rustx toggle main.rx --line 3
  rustx toggle main.rx --lines 2:10 --diff
  rustx toggle main.rx --lines 2:10 --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := a.readSource(path)
			if err != nil {
				return err
			}

			start, end, err := parseLineRange(line, lineRange)
			if err != nil {
				return err
			}

			res := comment.ToggleLines(source, start-1, end-1)
			result := comment.Apply(source, res.Edits)

			out := cmd.OutOrStdout()
			switch {
			case write:
				if err := os.WriteFile(path, []byte(result), 0o644); err != nil {
					return fmt.Errorf("failed to write file: %w", err)
				}
				action := "commented"
				if res.AllCommented {
					action = "uncommented"
				}
				fmt.Fprintf(out, "%s lines %d-%d of %s (%d edits)\n",
					color.GreenString(action), res.StartLine+1, res.EndLine+1, path, len(res.Edits))
			case showDiff:
				printDiff(out, source, result)
			default:
				_, err = io.WriteString(out, result)
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&line, "line", "l", 0, "line to toggle")
	cmd.Flags().StringVar(&lineRange, "lines", "", "inclusive line range to toggle, as START:END")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite FILE in place")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a diff instead of the result")
	cmd.MarkFlagsMutuallyExclusive("line", "lines")
	cmd.MarkFlagsMutuallyExclusive("write", "diff")
	return cmd
}

// parseLineRange resolves --line / --lines to a 1-based inclusive range.
func parseLineRange(line int, lineRange string) (int, int, error) {
	if lineRange == "" {
		if line < 1 {
			return 0, 0, errors.New("one of --line or --lines is required")
		}
		return line, line, nil
	}

	from, to, ok := strings.Cut(lineRange, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --lines %q, want START:END", lineRange)
	}
	start, err := strconv.Atoi(from)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --lines start %q: %w", from, err)
	}
	end, err := strconv.Atoi(to)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --lines end %q: %w", to, err)
	}
	if start < 1 || end < start {
		return 0, 0, fmt.Errorf("invalid --lines %q", lineRange)
	}
	return start, end, nil
}

func printDiff(w io.Writer, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	removed := color.New(color.FgRed).SprintFunc()
	added := color.New(color.FgGreen).SprintFunc()

	for _, d := range diffs {
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			l = strings.TrimSuffix(l, "\n")
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				fmt.Fprintln(w, removed("-"+l))
			case diffmatchpatch.DiffInsert:
				fmt.Fprintln(w, added("+"+l))
			default:
				fmt.Fprintln(w, " "+l)
			}
		}
	}
}
