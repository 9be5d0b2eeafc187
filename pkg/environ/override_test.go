package environ

import (
	"errors"
	"reflect"
	"testing"
)

// failingEnvironment rejects Setenv for one name.
type failingEnvironment struct {
	*MapEnvironment
	reject string
}

func (f *failingEnvironment) Setenv(key, value string) error {
	if key == f.reject {
		return errors.New("rejected")
	}
	return f.MapEnvironment.Setenv(key, value)
}

func TestOverride(t *testing.T) {
	e := NewMapEnvironment(map[string]string{"HOME": "/root", "PATH": "/usr/local/bin:/usr/bin"})
	before := e.Environ()

	restore, err := Override(e, map[string]string{"PATH": "/bin:/usr/bin"})
	if err != nil {
		t.Fatalf("Override() error = %v", err)
	}

	want := []string{"PATH=/bin:/usr/bin"}
	if got := e.Environ(); !reflect.DeepEqual(got, want) {
		t.Errorf("Environ() during override = %v, want %v", got, want)
	}
	if _, ok := e.LookupEnv("HOME"); ok {
		t.Error("HOME visible during override")
	}

	if err := restore(); err != nil {
		t.Fatalf("restore() error = %v", err)
	}
	if got := e.Environ(); !reflect.DeepEqual(got, before) {
		t.Errorf("Environ() after restore = %v, want %v", got, before)
	}

	if err := restore(); err != nil {
		t.Fatalf("second restore() error = %v", err)
	}
	if got := e.Environ(); !reflect.DeepEqual(got, before) {
		t.Errorf("Environ() after second restore = %v, want %v", got, before)
	}
}

func TestOverride_Empty(t *testing.T) {
	e := NewMapEnvironment(map[string]string{"HOME": "/root"})

	restore, err := Override(e, nil)
	if err != nil {
		t.Fatalf("Override() error = %v", err)
	}
	if got := e.Environ(); len(got) != 0 {
		t.Errorf("Environ() = %v, want empty", got)
	}
	if err := restore(); err != nil {
		t.Fatalf("restore() error = %v", err)
	}
	if v, _ := e.LookupEnv("HOME"); v != "/root" {
		t.Errorf("HOME = %q after restore, want /root", v)
	}
}

func TestOverride_InvalidName(t *testing.T) {
	e := NewMapEnvironment(map[string]string{"HOME": "/root"})
	before := e.Environ()

	_, err := Override(e, map[string]string{"A=B": "x"})
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("Override() error = %v, want ErrInvalidName", err)
	}
	if got := e.Environ(); !reflect.DeepEqual(got, before) {
		t.Errorf("Environ() = %v, want unchanged %v", got, before)
	}
}

func TestOverride_SetFailureRestores(t *testing.T) {
	e := &failingEnvironment{
		MapEnvironment: NewMapEnvironment(map[string]string{"HOME": "/root"}),
		reject:         "B",
	}
	before := e.Environ()

	_, err := Override(e, map[string]string{"A": "1", "B": "2"})
	if err == nil {
		t.Fatal("Override() error = nil, want error")
	}
	if got := e.Environ(); !reflect.DeepEqual(got, before) {
		t.Errorf("Environ() = %v, want restored %v", got, before)
	}
}

func TestOverride_SkipsUnnamedEntries(t *testing.T) {
	e := &entriesEnvironment{
		MapEnvironment: NewMapEnvironment(nil),
		extra:          []string{"=C:=C:\\", "HOME=/root"},
	}

	restore, err := Override(e, map[string]string{"A": "1"})
	if err != nil {
		t.Fatalf("Override() error = %v", err)
	}
	e.extra = nil
	if err := restore(); err != nil {
		t.Fatalf("restore() error = %v", err)
	}
	want := []string{"HOME=/root"}
	if got := e.Environ(); !reflect.DeepEqual(got, want) {
		t.Errorf("Environ() = %v, want %v", got, want)
	}
}

// entriesEnvironment reports extra raw entries from Environ, like platforms
// that expose pseudo-variables.
type entriesEnvironment struct {
	*MapEnvironment
	extra []string
}

func (e *entriesEnvironment) Environ() []string {
	return append(append([]string{}, e.extra...), e.MapEnvironment.Environ()...)
}
