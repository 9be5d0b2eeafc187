package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/execvpe/pkg/exec"
	"github.com/vertti/execvpe/pkg/fork"
	"github.com/vertti/execvpe/pkg/output"
)

// demoRequest has the child print its environment, which holds only PATH.
var demoRequest = fork.Request{
	Name: "env",
	Argv: []string{"env"},
	Env:  map[string]string{"PATH": "/bin:/usr/bin"},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Fork a child that runs env with only PATH set",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	output.Progressf(cmd.OutOrStdout(), "%s", exec.DefaultPath)
	return forkAndReport(cmd, demoRequest)
}

// forkAndReport runs req in a child process and prints how the child ended.
func forkAndReport(cmd *cobra.Command, req fork.Request) error {
	status, err := forker.Run(req)
	if err != nil {
		return err
	}
	output.PrintStatus(cmd.OutOrStdout(), status.Exited, status.ExitCode)
	return nil
}
