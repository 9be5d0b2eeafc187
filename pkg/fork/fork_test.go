package fork

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestRequest_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "env demo",
			req: Request{
				Name: "env",
				Argv: []string{"env"},
				Env:  map[string]string{"PATH": "/bin:/usr/bin"},
			},
		},
		{
			name: "argv with flags",
			req: Request{
				Name: "sh",
				Argv: []string{"sh", "-c", "exit 3", "--", "--env=x"},
				Env:  map[string]string{"A": "1", "B": "x=y"},
			},
		},
		{
			name: "empty environment",
			req: Request{
				Name: "/usr/bin/true",
				Argv: []string{"true"},
				Env:  map[string]string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest(tt.req.args())
			if err != nil {
				t.Fatalf("ParseRequest() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.req) {
				t.Errorf("ParseRequest() = %+v, want %+v", got, tt.req)
			}
		})
	}
}

func TestParseRequest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"malformed env entry", []string{"--name=env", "--env=PATH", "--", "env"}},
		{"empty env name", []string{"--name=env", "--env==x", "--", "env"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRequest(tt.args); err == nil {
				t.Error("ParseRequest() error = nil, want error")
			}
		})
	}
}

func TestRunChild_InvalidRequest(t *testing.T) {
	var stderr bytes.Buffer
	if code := RunChild([]string{"--bogus"}, &stderr); code != 1 {
		t.Errorf("RunChild() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Failed to execute execvpe") {
		t.Errorf("stderr = %q, want failure message", stderr.String())
	}
}

func TestIsChild(t *testing.T) {
	if IsChild() {
		t.Fatal("IsChild() = true in test process")
	}
	t.Setenv(ChildEnv, "1")
	if !IsChild() {
		t.Error("IsChild() = false with marker set")
	}
}
