// Package runner provides a stub-friendly interface for running external
// commands with their output streamed to the terminal.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
)

// Result holds the outcome of a command execution.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Opts holds optional parameters for a command execution.
type Opts struct {
	Dir    string    // working directory (optional)
	Stdout io.Writer // live copy of stdout (optional)
	Stderr io.Writer // live copy of stderr (optional)
}

// Runner runs external commands.
type Runner interface {
	// Run executes name with args. A process that starts and exits non-zero
	// is reported through Result.ExitCode with a nil error; the error is
	// reserved for failures to start or wait (binary missing, ctx canceled).
	Run(ctx context.Context, name string, args []string, opts Opts) (Result, error)
}

// Exec is the os/exec backed Runner.
type Exec struct{}

// New returns the production Runner.
func New() *Exec {
	return &Exec{}
}

// Run executes the command, capturing stdout/stderr while also streaming them
// to the writers in opts.
func (e *Exec) Run(ctx context.Context, name string, args []string, opts Opts) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = tee(&stdoutBuf, opts.Stdout)
	cmd.Stderr = tee(&stderrBuf, opts.Stderr)

	err := cmd.Run()

	result := Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}

// CommandLine renders name and args for log and error messages.
func CommandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}
