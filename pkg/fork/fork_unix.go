//go:build unix

package fork

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Status is how a child process terminated.
type Status struct {
	Pid int
	// Exited is true when the child terminated normally and ExitCode is valid.
	Exited   bool
	ExitCode int
	// Signal is the signal that killed the child, if any.
	Signal syscall.Signal
}

func (s Status) String() string {
	if s.Exited {
		return fmt.Sprintf("exited with code %d", s.ExitCode)
	}
	if s.Signal != 0 {
		if name := unix.SignalName(s.Signal); name != "" {
			return "killed by signal " + name
		}
		return fmt.Sprintf("killed by signal %d", int(s.Signal))
	}
	return "terminated abnormally"
}

// Forker starts children by re-running an executable.
type Forker struct {
	Self   string // executable to run; defaults to the current one
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// Fork starts a child that will handle req and returns its pid.
func (f *Forker) Fork(req Request) (int, error) {
	self := f.Self
	if self == "" {
		var err error
		if self, err = os.Executable(); err != nil {
			return 0, fmt.Errorf("failed to fork: %w", err)
		}
	}

	attr := &os.ProcAttr{
		Env:   append(os.Environ(), ChildEnv+"=1"),
		Files: []*os.File{orFile(f.Stdin, os.Stdin), orFile(f.Stdout, os.Stdout), orFile(f.Stderr, os.Stderr)},
	}
	argv := append([]string{self}, req.args()...)

	p, err := os.StartProcess(self, argv, attr)
	if err != nil {
		return 0, fmt.Errorf("failed to fork: %w", err)
	}
	pid := p.Pid
	// Wait reaps the child by pid; the handle is not needed.
	_ = p.Release()
	return pid, nil
}

// Run forks a child for req and waits for it to terminate.
func (f *Forker) Run(req Request) (Status, error) {
	pid, err := f.Fork(req)
	if err != nil {
		return Status{}, err
	}
	return Wait(pid)
}

// Wait blocks until the child pid terminates.
func Wait(pid int) (Status, error) {
	var ws unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &ws, 0, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return Status{}, fmt.Errorf("failed to wait for the child process: %w", err)
		}
		break
	}

	s := Status{Pid: pid}
	switch {
	case ws.Exited():
		s.Exited = true
		s.ExitCode = ws.ExitStatus()
	case ws.Signaled():
		s.Signal = ws.Signal()
	}
	return s, nil
}

func orFile(f, def *os.File) *os.File {
	if f != nil {
		return f
	}
	return def
}
