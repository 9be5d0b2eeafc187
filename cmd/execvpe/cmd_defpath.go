package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/execvpe/pkg/exec"
	"github.com/vertti/execvpe/pkg/output"
)

var defpathCmd = &cobra.Command{
	Use:   "defpath",
	Short: "Print the search path used when PATH is not set",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		output.Progressf(cmd.OutOrStdout(), "%s", exec.DefaultPath)
	},
}

func init() {
	rootCmd.AddCommand(defpathCmd)
}
