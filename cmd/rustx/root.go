package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rustx/internal/config"
	"rustx/internal/dialect"
)

var version = "0.0.1"

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfgFile  string
	force    bool
	cfg      config.Config
	registry *dialect.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "rustx",
		Short:         "Tokenize and toggle comments in Rustx source files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.registry = cfg.Registry()
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: .rustx/config.yaml or ~/.config/rustx/config.yaml)")
	root.PersistentFlags().BoolVar(&a.force, "force", false,
		"process files even when their extension is not a dialect extension")

	root.AddCommand(
		newTokensCmd(a),
		newToggleCmd(a),
		newInitCmd(a),
		newExtensionsCmd(a),
		newKeywordsCmd(),
		newReplCmd(),
	)
	return root
}

// readSource reads a dialect file, refusing other files unless --force.
func (a *app) readSource(path string) (string, error) {
	if !a.force && !a.registry.Matches(path) {
		return "", fmt.Errorf("%s is not a Rustx file (extensions: %v); use --force to process it anyway",
			path, a.registry.Extensions())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.LocalPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}

func newExtensionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "List the file extensions treated as Rustx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ext := range a.registry.Extensions() {
				fmt.Fprintf(cmd.OutOrStdout(), ".%s\n", ext)
			}
			return nil
		},
	}
}

func newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the highlighted keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kw := range dialect.Keywords() {
				fmt.Fprintln(cmd.OutOrStdout(), kw)
			}
			return nil
		},
	}
}
