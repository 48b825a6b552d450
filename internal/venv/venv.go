// Package venv creates the project's isolated Python environment. Creation is
// idempotent by presence: an environment directory that already exists is
// reused as-is and never repaired or recreated.
package venv

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pyboot-dev/pyboot/internal/interp"
	"github.com/pyboot-dev/pyboot/internal/runner"
	"go.uber.org/zap"
)

// Creator creates environments with a discovered interpreter.
type Creator struct {
	Runner runner.Runner
	Logger *zap.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Ensure creates dir with `<interpreter> -m venv <dir>` unless dir already
// exists. It reports whether the environment was created by this call.
func (c *Creator) Ensure(ctx context.Context, w io.Writer, it *interp.Interpreter, dir string) (bool, error) {
	log := c.logger()

	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists but is not a directory", dir)
		}
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", dir)
		log.Debug("environment present, skipping creation", zap.String("dir", dir))
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking environment directory %s: %w", dir, err)
	}

	args := []string{"-m", "venv", dir}
	log.Debug("creating environment",
		zap.String("interpreter", it.Path),
		zap.String("command", runner.CommandLine(it.Name, args)))

	res, err := c.Runner.Run(ctx, it.Path, args, runner.Opts{Stdout: c.Stdout, Stderr: c.Stderr})
	if err != nil {
		return false, fmt.Errorf("running %s: %w", runner.CommandLine(it.Name, args), err)
	}
	if res.ExitCode != 0 {
		return false, fmt.Errorf("%s exited with code %d", runner.CommandLine(it.Name, args), res.ExitCode)
	}

	fmt.Fprintf(w, "  [ OK ] Created %s\n", dir)
	return true, nil
}

func (c *Creator) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Python returns the path of the interpreter inside the environment at dir.
func Python(dir string) string {
	return pythonFor(runtime.GOOS, dir)
}

func pythonFor(goos, dir string) string {
	if goos == "windows" {
		return filepath.Join(dir, "Scripts", "python.exe")
	}
	return filepath.Join(dir, "bin", "python")
}
