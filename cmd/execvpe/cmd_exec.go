package main

import (
	"github.com/spf13/cobra"
)

var execFlags launchFlags

var execCmd = &cobra.Command{
	Use:   "exec [flags] [--] PROGRAM [ARGS...]",
	Short: "Replace this process with PROGRAM in a replaced environment",
	Long: `Replace this process with PROGRAM, looked up in the PATH of the replacement
environment. Nothing after a successful exec runs; on failure the error is
reported and the exit code is 1.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	execFlags.register(execCmd)
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	req, err := execFlags.request(args)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	return launcher.Execvpe(req.Name, req.Argv, req.Env)
}
