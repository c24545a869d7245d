package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Overpeek/yac/ast"
	"github.com/Overpeek/yac/internal/log"
	"github.com/Overpeek/yac/yac"
	"github.com/spf13/cobra"
)

var EvalCmd = &cobra.Command{
	Use:          "eval \"expression\" [\"expression\" ...]",
	Short:        "Simplify expressions and print the results",
	RunE:         runEval,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = EvalCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runEval(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	for _, arg := range args {
		expr, err := yac.Run(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ast.ExprString(expr))
	}
	return nil
}
