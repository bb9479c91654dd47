package main

import (
	"github.com/spf13/cobra"

	"rustx/repl"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Highlight lines read from stdin interactively",
		Long: `Read lines from stdin and print their spans. A line starting with
":toggle " is toggled and the result printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
