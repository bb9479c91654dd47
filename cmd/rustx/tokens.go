package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rustx/internal/tokenizer"
)

func newTokensCmd(a *app) *cobra.Command {
	var (
		highlight bool
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the comment and keyword spans of a file",
		Long: `Print the spans the highlighter reports for FILE, one per line as
LINE:COLUMN KIND TEXT. With --highlight the file is printed with comments
and keywords coloured instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.readSource(args[0])
			if err != nil {
				return err
			}
			if highlight {
				return printHighlighted(cmd.OutOrStdout(), source)
			}
			return printTokens(cmd.OutOrStdout(), args[0], source, all)
		},
	}

	cmd.Flags().BoolVar(&highlight, "highlight", false, "print the file with spans coloured")
	cmd.Flags().BoolVar(&all, "all", false, "include code spans")
	return cmd
}

func printTokens(w io.Writer, path, source string, all bool) error {
	lex, err := tokenizer.Definition.Lex(path, strings.NewReader(source))
	if err != nil {
		return err
	}

	kindColor := map[tokenizer.Kind]*color.Color{
		tokenizer.Code:        color.New(color.Faint),
		tokenizer.LineComment: color.New(color.FgGreen),
		tokenizer.Keyword:     color.New(color.FgMagenta, color.Bold),
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			return err
		}
		if tok.Type == lexer.EOF {
			return nil
		}

		kind := tokenizer.KindOf(tok.Type)
		if kind == tokenizer.Code && !all {
			continue
		}
		fmt.Fprintf(w, "%d:%d %s %s\n",
			tok.Pos.Line, tok.Pos.Column,
			kindColor[kind].Sprintf("%-12s", kind),
			strconv.Quote(tok.Value))
	}
}

func printHighlighted(w io.Writer, source string) error {
	comment := color.New(color.FgGreen).SprintFunc()
	keyword := color.New(color.FgMagenta, color.Bold).SprintFunc()

	for span := range tokenizer.Spans(source, 0, len(source)) {
		text := span.Text(source)
		switch span.Kind {
		case tokenizer.LineComment:
			text = comment(text)
		case tokenizer.Keyword:
			text = keyword(text)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}
