// Package fork runs a launch request in a child copy of the current program
// and waits for it.
//
// A Go program cannot fork(2) its multithreaded runtime, so the child is a
// fresh run of the same executable. It inherits the parent's environment and
// standard files, finds ChildEnv set, and handles the request with RunChild
// before doing anything else.
package fork

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/vertti/execvpe/pkg/environ"
	"github.com/vertti/execvpe/pkg/exec"
	"github.com/vertti/execvpe/pkg/output"
)

// ChildEnv is set in the environment of processes started by Fork.
const ChildEnv = "EXECVPE_FORK_CHILD"

// Request describes the program a child should become.
type Request struct {
	Name string
	Argv []string
	Env  map[string]string
}

// args encodes r as the child's command line.
func (r Request) args() []string {
	args := []string{"--name=" + r.Name}
	for _, entry := range environ.Format(r.Env) {
		args = append(args, "--env="+entry)
	}
	args = append(args, "--")
	return append(args, r.Argv...)
}

// ParseRequest decodes a child's command line, without the program name.
func ParseRequest(args []string) (Request, error) {
	var (
		req     Request
		entries []string
	)

	fs := pflag.NewFlagSet("child", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&req.Name, "name", "", "program to execute")
	fs.StringArrayVar(&entries, "env", nil, "replacement environment entry")
	if err := fs.Parse(args); err != nil {
		return Request{}, fmt.Errorf("invalid child request: %w", err)
	}

	env, err := environ.Parse(entries)
	if err != nil {
		return Request{}, fmt.Errorf("invalid child request: %w", err)
	}
	req.Env = env
	req.Argv = fs.Args()
	return req, nil
}

// IsChild reports whether this process was started by Fork.
func IsChild() bool {
	_, ok := os.LookupEnv(ChildEnv)
	return ok
}

// RunChild executes the request encoded in args. It only returns when the
// request could not be executed, after reporting why on stderr.
func RunChild(args []string, stderr io.Writer) int {
	req, err := ParseRequest(args)
	if err != nil {
		output.Errorf(stderr, "Failed to execute execvpe: %v", err)
		return 1
	}

	l := exec.NewLauncher(&environ.RealEnvironment{})
	err = l.Execvpe(req.Name, req.Argv, req.Env)
	output.Errorf(stderr, "Failed to execute execvpe: %v", err)
	return 1
}
