//go:build !( js || wasm)

package main

import (
	"os"

	"github.com/Overpeek/yac/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "yac [subcommand]",
	Short:        "yac 🧮\n yet another calculator",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.EvalCmd)
	rootCmd.AddCommand(cmd.ReplCmd)
}
