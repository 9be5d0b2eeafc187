// Package environ provides an injectable view of the process environment.
package environ

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrInvalidName is returned for an empty variable name or one containing '=' or NUL.
	ErrInvalidName = errors.New("invalid environment variable name")
	// ErrMalformedEntry is returned for an entry that is not of the form KEY=VALUE.
	ErrMalformedEntry = errors.New("malformed environment entry")
)

// Environment is a process environment: a mapping from name to value.
type Environment interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
	Clearenv()
	// Environ returns a copy of the environment as KEY=VALUE entries.
	Environ() []string
}

// RealEnvironment is the process environment of the running program.
type RealEnvironment struct{}

func (r *RealEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (r *RealEnvironment) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

func (r *RealEnvironment) Unsetenv(key string) error {
	return os.Unsetenv(key)
}

func (r *RealEnvironment) Clearenv() {
	os.Clearenv()
}

func (r *RealEnvironment) Environ() []string {
	return os.Environ()
}

// MapEnvironment is an in-memory Environment.
// Environ lists entries sorted by name.
type MapEnvironment struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapEnvironment returns a MapEnvironment holding a copy of vars.
func NewMapEnvironment(vars map[string]string) *MapEnvironment {
	m := &MapEnvironment{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

func (m *MapEnvironment) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[key]
	return v, ok
}

func (m *MapEnvironment) Setenv(key, value string) error {
	if err := ValidateName(key); err != nil {
		return err
	}
	if strings.IndexByte(value, 0) >= 0 {
		return fmt.Errorf("value of %s contains NUL", key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vars == nil {
		m.vars = make(map[string]string)
	}
	m.vars[key] = value
	return nil
}

func (m *MapEnvironment) Unsetenv(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vars, key)
	return nil
}

func (m *MapEnvironment) Clearenv() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vars = make(map[string]string)
}

func (m *MapEnvironment) Environ() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Format(m.vars)
}

// ValidateName reports whether key can name an environment variable.
func ValidateName(key string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidName, key)
	}
	return nil
}

// Parse converts KEY=VALUE entries into a map. Later duplicates win.
func Parse(entries []string) (map[string]string, error) {
	vars := make(map[string]string, len(entries))
	for _, entry := range entries {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEntry, entry)
		}
		if err := ValidateName(name); err != nil {
			return nil, err
		}
		vars[name] = value
	}
	return vars, nil
}

// Vars returns the contents of e as a map. Entries without a name are skipped.
func Vars(e Environment) map[string]string {
	entries := e.Environ()
	vars := make(map[string]string, len(entries))
	for _, entry := range entries {
		name, value, _ := strings.Cut(entry, "=")
		if name == "" {
			continue
		}
		if _, ok := vars[name]; !ok {
			vars[name] = value
		}
	}
	return vars
}

// Format renders vars as KEY=VALUE entries sorted by name.
func Format(vars map[string]string) []string {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)

	entries := make([]string, 0, len(names))
	for _, k := range names {
		entries = append(entries, k+"="+vars[k])
	}
	return entries
}
