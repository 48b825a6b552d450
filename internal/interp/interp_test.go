package interp

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pyboot-dev/pyboot/internal/runner"
)

// fakePath resolves only the names present in its map and records every probe.
type fakePath struct {
	found  map[string]string
	probed []string
}

func (f *fakePath) lookPath(name string) (string, error) {
	f.probed = append(f.probed, name)
	if p, ok := f.found[name]; ok {
		return p, nil
	}
	return "", exec.ErrNotFound
}

func TestFind_PrimaryWins(t *testing.T) {
	fp := &fakePath{found: map[string]string{
		"python3": "/usr/bin/python3",
		"python":  "/usr/bin/python",
	}}
	f := &Finder{LookPath: fp.lookPath}

	it, err := f.Find([]string{"python3", "python"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if it.Name != "python3" || it.Path != "/usr/bin/python3" {
		t.Errorf("Find = %+v, want python3 at /usr/bin/python3", it)
	}
	// First match short-circuits the search.
	if diff := cmp.Diff([]string{"python3"}, fp.probed); diff != "" {
		t.Errorf("probed mismatch (-want +got):\n%s", diff)
	}
}

func TestFind_FallsBackToSecondary(t *testing.T) {
	fp := &fakePath{found: map[string]string{"python": "/usr/local/bin/python"}}
	f := &Finder{LookPath: fp.lookPath}

	it, err := f.Find([]string{"python3", "python"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if it.Name != "python" {
		t.Errorf("Name = %q, want python", it.Name)
	}
	if diff := cmp.Diff([]string{"python3", "python"}, fp.probed); diff != "" {
		t.Errorf("probed mismatch (-want +got):\n%s", diff)
	}
}

func TestFind_NoneFound(t *testing.T) {
	fp := &fakePath{}
	f := &Finder{LookPath: fp.lookPath}

	_, err := f.Find([]string{"python3", "python"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "python3, python") {
		t.Errorf("error should list candidates: %v", err)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		output  string
		want    string
		wantErr bool
	}{
		{"Python 3.11.4\n", "3.11.4", false},
		{"Python 3.13.0rc1", "3.13.0", false},
		{"Python 2.7", "2.7.0", false},
		{"", "", true},
		{"not a python", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			v, err := ParseVersion(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", v)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion: %v", err)
			}
			if v.String() != tt.want {
				t.Errorf("ParseVersion(%q) = %s, want %s", tt.output, v, tt.want)
			}
		})
	}
}

func TestCheckConstraint(t *testing.T) {
	v, err := ParseVersion("Python 3.9.18")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		constraint string
		wantErr    bool
	}{
		{"", false},
		{">=3.8", false},
		{"~3.9", false},
		{">=3.10", true},
		{"not-a-constraint", true},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			err := CheckConstraint(v, tt.constraint)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckConstraint(%q) error = %v, wantErr %v", tt.constraint, err, tt.wantErr)
			}
		})
	}
}

// stubRunner returns a canned result and records the arguments it was called with.
type stubRunner struct {
	result runner.Result
	err    error
	name   string
	args   []string
}

func (s *stubRunner) Run(_ context.Context, name string, args []string, _ runner.Opts) (runner.Result, error) {
	s.name, s.args = name, args
	return s.result, s.err
}

func TestVersion(t *testing.T) {
	it := &Interpreter{Name: "python3", Path: "/usr/bin/python3"}

	t.Run("stdout", func(t *testing.T) {
		sr := &stubRunner{result: runner.Result{Stdout: "Python 3.12.1\n"}}
		v, err := Version(context.Background(), sr, it)
		if err != nil {
			t.Fatalf("Version: %v", err)
		}
		if v.String() != "3.12.1" {
			t.Errorf("Version = %s, want 3.12.1", v)
		}
		if sr.name != it.Path {
			t.Errorf("ran %q, want %q", sr.name, it.Path)
		}
		if diff := cmp.Diff([]string{"--version"}, sr.args); diff != "" {
			t.Errorf("args mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("stderr", func(t *testing.T) {
		sr := &stubRunner{result: runner.Result{Stderr: "Python 2.7.18\n"}}
		v, err := Version(context.Background(), sr, it)
		if err != nil {
			t.Fatalf("Version: %v", err)
		}
		if v.Major() != 2 {
			t.Errorf("Major = %d, want 2", v.Major())
		}
	})

	t.Run("non-zero exit", func(t *testing.T) {
		sr := &stubRunner{result: runner.Result{ExitCode: 1}}
		if _, err := Version(context.Background(), sr, it); err == nil {
			t.Error("expected error for non-zero exit")
		}
	})
}
