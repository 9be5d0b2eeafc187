package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/execvpe/pkg/environ"
	"github.com/vertti/execvpe/pkg/fork"
)

// launchFlags describe a program and the environment to run it in.
type launchFlags struct {
	env        []string
	envFile    string
	envSection string
	inherit    bool
	argv0      string
}

func (f *launchFlags) register(cmd *cobra.Command) {
	// Flags after PROGRAM belong to PROGRAM.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringArrayVarP(&f.env, "env", "e", nil, "KEY=VALUE entry of the replacement environment (repeatable)")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "INI file supplying replacement environment entries")
	cmd.Flags().StringVar(&f.envSection, "env-section", "", "section of --env-file to read (default: the unnamed section)")
	cmd.Flags().BoolVar(&f.inherit, "inherit", false, "start from the current environment instead of an empty one")
	cmd.Flags().StringVar(&f.argv0, "argv0", "", "argv[0] passed to PROGRAM (default: PROGRAM)")
}

// request builds the launch request for args, which start with PROGRAM.
// Later sources win: inherited environment, then --env-file, then --env.
func (f *launchFlags) request(args []string) (fork.Request, error) {
	if err := requireWith(
		flagSet{name: "--env-section", isSet: f.envSection != ""},
		flagSet{name: "--env-file", isSet: f.envFile != ""},
	); err != nil {
		return fork.Request{}, err
	}

	vars := map[string]string{}
	if f.inherit {
		vars = environ.Vars(&environ.RealEnvironment{})
	}

	if f.envFile != "" {
		fileVars, err := environ.LoadINI(f.envFile, f.envSection)
		if err != nil {
			return fork.Request{}, err
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	flagVars, err := environ.Parse(f.env)
	if err != nil {
		return fork.Request{}, fmt.Errorf("invalid --env: %w", err)
	}
	for k, v := range flagVars {
		vars[k] = v
	}

	argv0 := args[0]
	if f.argv0 != "" {
		argv0 = f.argv0
	}
	argv := append([]string{argv0}, args[1:]...)

	return fork.Request{Name: args[0], Argv: argv, Env: vars}, nil
}
