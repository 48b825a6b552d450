package interp

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotFound is returned when none of the candidate names resolve on PATH.
var ErrNotFound = errors.New("no interpreter found")

// Interpreter is a resolved interpreter binary.
type Interpreter struct {
	Name string // candidate name that matched, e.g. "python3"
	Path string // absolute path returned by the PATH lookup
}

// LookPathFunc resolves a binary name to a path.
type LookPathFunc func(name string) (string, error)

// Finder probes candidate interpreter names.
type Finder struct {
	// LookPath defaults to exec.LookPath; tests substitute a fake.
	LookPath LookPathFunc
}

// Find returns the first candidate that resolves. Probing stops at the first
// match. If no candidate resolves the error wraps ErrNotFound.
func (f *Finder) Find(candidates []string) (*Interpreter, error) {
	lookPath := f.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	for _, name := range candidates {
		path, err := lookPath(name)
		if err != nil {
			continue
		}
		return &Interpreter{Name: name, Path: path}, nil
	}
	return nil, fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(candidates, ", "))
}
