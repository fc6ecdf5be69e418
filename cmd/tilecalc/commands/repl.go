package commands

import (
	"github.com/spf13/cobra"

	"github.com/avannier/tilecalc/internal/cli"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive calculator session",
		Long: `Start an interactive session for counting, showing, and verifying tilings
without restarting the program between questions. Type help inside the
session for the command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := cli.NewREPL(factory, cli.REPLConfig{
				DefaultMethod: cfg.Method,
				Timeout:       cfg.Timeout,
				WarnThreshold: cfg.WarnThreshold,
			})
			r.SetInput(cmd.InOrStdin())
			r.SetOutput(cmd.OutOrStdout())
			r.Start()
			return nil
		},
	}
}
