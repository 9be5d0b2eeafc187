package environ

import (
	"errors"
	"fmt"
	"strings"
)

// Override replaces the whole of e with vars and returns a function that
// reinstates the previous contents. If installing vars fails, the previous
// contents are reinstated before the error is returned.
//
// Between Override and restore every lookup through e observes vars. When e
// is the process environment this is not safe while other goroutines read or
// write environment variables.
//
// restore may be called more than once.
func Override(e Environment, vars map[string]string) (restore func() error, err error) {
	for k := range vars {
		if err := ValidateName(k); err != nil {
			return nil, err
		}
	}

	saved := e.Environ()
	restore = func() error {
		return reinstate(e, saved)
	}

	e.Clearenv()
	for _, entry := range Format(vars) {
		k, v, _ := strings.Cut(entry, "=")
		if err := e.Setenv(k, v); err != nil {
			err = fmt.Errorf("failed to set %s: %w", k, err)
			return nil, errors.Join(err, restore())
		}
	}
	return restore, nil
}

func reinstate(e Environment, saved []string) error {
	e.Clearenv()
	var errs []error
	for _, entry := range saved {
		k, v, _ := strings.Cut(entry, "=")
		if k == "" {
			continue
		}
		if err := e.Setenv(k, v); err != nil {
			errs = append(errs, fmt.Errorf("failed to restore %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}
