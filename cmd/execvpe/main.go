package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/execvpe/pkg/environ"
	"github.com/vertti/execvpe/pkg/exec"
	"github.com/vertti/execvpe/pkg/fork"
	"github.com/vertti/execvpe/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	launcher exec.Executor = exec.NewLauncher(&environ.RealEnvironment{})
	forker                 = &fork.Forker{}
)

func main() {
	// A forked child must become its program before any command runs.
	if fork.IsChild() {
		os.Exit(fork.RunChild(os.Args[1:], os.Stderr))
	}

	if err := rootCmd.Execute(); err != nil {
		output.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "execvpe",
	Short:         "Run a program found via PATH with a replaced environment",
	Long:          "execvpe replaces a process with a program found via a search path, running it in an environment of your choosing.",
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runDemo,
	SilenceErrors: true,
}
