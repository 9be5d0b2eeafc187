//go:build windows

package exec

import "errors"

// ErrExecNotSupported indicates exec is not available on Windows.
var ErrExecNotSupported = errors.New("exec not supported on Windows")

// Windows does not have an exec syscall that replaces the current process.

func (l *Launcher) Execvpe(name string, argv []string, vars map[string]string) error {
	return &Error{Name: name, Err: ErrExecNotSupported}
}

func (l *Launcher) Execvp(name string, argv []string) error {
	return &Error{Name: name, Err: ErrExecNotSupported}
}
