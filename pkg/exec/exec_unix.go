//go:build unix

package exec

import (
	"errors"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/vertti/execvpe/pkg/environ"
)

// execFunc replaces the process image. Only returns on failure.
var execFunc = unix.Exec

// shell runs files the kernel refuses to execute directly.
const shell = "/bin/sh"

// Execvpe installs vars as the whole environment and execs name.
// It only returns if the exec failed, in which case the previous environment
// is back in place.
func (l *Launcher) Execvpe(name string, argv []string, vars map[string]string) (err error) {
	restore, err := environ.Override(l.env, vars)
	if err != nil {
		return &Error{Name: name, Err: err}
	}
	// Unreachable when the exec succeeds.
	defer func() {
		if rerr := restore(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	return l.Execvp(name, argv)
}

// Execvp execs name with argv in the current environment.
// A name without a slash is looked up in the directories listed in PATH.
func (l *Launcher) Execvp(name string, argv []string) error {
	if name == "" {
		return &Error{Name: name, Err: unix.ENOENT}
	}
	if len(argv) == 0 {
		argv = []string{name}
	}
	envv := l.env.Environ()

	if strings.Contains(name, "/") {
		if err := execFile(name, argv, envv); err != nil {
			return &Error{Name: name, Err: err}
		}
		return nil
	}

	denied := false
	for _, dir := range strings.Split(l.searchPath(), ":") {
		file := name
		if dir != "" {
			file = strings.TrimSuffix(dir, "/") + "/" + name
		}

		err := execFile(file, argv, envv)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, unix.EACCES):
			denied = true
		case errors.Is(err, unix.ENOENT),
			errors.Is(err, unix.ENOTDIR),
			errors.Is(err, unix.ESTALE),
			errors.Is(err, unix.ENODEV),
			errors.Is(err, unix.ETIMEDOUT):
		default:
			return &Error{Name: name, Err: err}
		}
	}

	if denied {
		return &Error{Name: name, Err: unix.EACCES}
	}
	return &Error{Name: name, Err: unix.ENOENT}
}

// execFile execs file, falling back to the shell for files without a
// recognized executable format.
func execFile(file string, argv, envv []string) error {
	err := execFunc(file, argv, envv)
	if !errors.Is(err, unix.ENOEXEC) {
		return err
	}

	script := make([]string, 0, len(argv)+1)
	script = append(script, shell, file)
	script = append(script, argv[1:]...)
	return execFunc(shell, script, envv)
}
