// Package exec replaces the running program with another one found via a search path.
package exec

import (
	"strconv"

	"github.com/vertti/execvpe/pkg/environ"
)

// DefaultPath is the search path used when PATH is not set.
const DefaultPath = "/usr/bin:/bin"

// Executor replaces the current process with another program.
type Executor interface {
	// Execvp runs name with argv in the current environment.
	Execvp(name string, argv []string) error
	// Execvpe runs name with argv in an environment consisting only of vars.
	Execvpe(name string, argv []string, vars map[string]string) error
}

// Launcher is the production Executor.
//
// It reads and temporarily replaces the environment it was created with, so
// a Launcher over environ.RealEnvironment must not be used while other
// goroutines touch the process environment.
type Launcher struct {
	env environ.Environment
}

// NewLauncher returns a Launcher working on env.
func NewLauncher(env environ.Environment) *Launcher {
	return &Launcher{env: env}
}

// Error is returned when a program cannot be executed.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return "exec " + strconv.Quote(e.Name) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// searchPath returns the directories to look for programs in.
func (l *Launcher) searchPath() string {
	if path, ok := l.env.LookupEnv("PATH"); ok {
		return path
	}
	return DefaultPath
}
