package main

import (
	"github.com/spf13/cobra"
)

var runFlags launchFlags

var runCmd = &cobra.Command{
	Use:   "run [flags] [--] PROGRAM [ARGS...]",
	Short: "Fork a child that execs PROGRAM in a replaced environment, then report its exit status",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRun,
}

func init() {
	runFlags.register(runCmd)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	req, err := runFlags.request(args)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	return forkAndReport(cmd, req)
}
