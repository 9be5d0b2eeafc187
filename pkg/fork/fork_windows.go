//go:build windows

package fork

import (
	"errors"
	"os"
)

// ErrNotSupported indicates Fork is not available on Windows, where the
// child could not replace itself with the requested program.
var ErrNotSupported = errors.New("fork not supported on Windows")

// Status is how a child process terminated.
type Status struct {
	Pid      int
	Exited   bool
	ExitCode int
}

// String never sees a real child on Windows.
func (s Status) String() string {
	return "terminated abnormally"
}

// Forker starts children by re-running an executable. On Windows every
// method returns ErrNotSupported.
type Forker struct {
	Self   string
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// Fork returns ErrNotSupported.
func (f *Forker) Fork(req Request) (int, error) {
	return 0, ErrNotSupported
}

// Run returns ErrNotSupported.
func (f *Forker) Run(req Request) (Status, error) {
	return Status{}, ErrNotSupported
}

// Wait returns ErrNotSupported.
func Wait(pid int) (Status, error) {
	return Status{}, ErrNotSupported
}
