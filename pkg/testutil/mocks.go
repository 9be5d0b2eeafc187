// Package testutil holds helpers shared by tests that fork real children.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Ptr returns a pointer to the value (useful for optional fields in tests).
func Ptr[T any](v T) *T {
	return &v
}

// RequireProgram skips the test unless name exists in /bin or /usr/bin.
func RequireProgram(t testing.TB, name string) {
	t.Helper()
	for _, dir := range []string{"/bin", "/usr/bin"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return
		}
	}
	t.Skipf("%s not found in /bin or /usr/bin", name)
}

// TempOutput creates a file to hand to a child process as stdout or stderr
// and returns a func reading back what was written.
func TempOutput(t testing.TB, name string) (*os.File, func() string) {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = f.Close() })

	return f, func() string {
		data, err := os.ReadFile(f.Name())
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}
}
