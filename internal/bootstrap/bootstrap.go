package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/pyboot-dev/pyboot/internal/config"
	"github.com/pyboot-dev/pyboot/internal/deps"
	"github.com/pyboot-dev/pyboot/internal/interp"
	"github.com/pyboot-dev/pyboot/internal/project"
	"github.com/pyboot-dev/pyboot/internal/runner"
	"github.com/pyboot-dev/pyboot/internal/venv"
	"go.uber.org/zap"
)

// Bootstrapper wires the setup steps together.
type Bootstrapper struct {
	Finder *interp.Finder
	Runner runner.Runner
	Logger *zap.Logger

	// Out receives the progress lines; Stdout and Stderr receive the output of
	// the interpreter and installer processes.
	Out    io.Writer
	Stdout io.Writer
	Stderr io.Writer
}

// Result describes what a run did.
type Result struct {
	Interpreter *interp.Interpreter
	Version     *semver.Version // nil unless a version constraint was checked
	EnvCreated  bool
	DirsCreated []string
	EnvPython   string
}

// New returns a Bootstrapper that uses PATH lookup and real processes.
func New(out, stdout, stderr io.Writer, logger *zap.Logger) *Bootstrapper {
	return &Bootstrapper{
		Finder: &interp.Finder{},
		Runner: runner.New(),
		Logger: logger,
		Out:    out,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Run executes the sequence for layout using cfg. It stops at the first
// failure; nothing is retried or rolled back.
func (b *Bootstrapper) Run(ctx context.Context, layout project.Layout, cfg *config.Config) (*Result, error) {
	log := b.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out := b.Out
	if out == nil {
		out = io.Discard
	}
	finder := b.Finder
	if finder == nil {
		finder = &interp.Finder{}
	}
	r := b.Runner
	if r == nil {
		r = runner.New()
	}

	log.Debug("bootstrap starting",
		zap.String("root", layout.Root),
		zap.Strings("interpreters", cfg.Interpreters))

	// Interpreter discovery runs before anything touches the filesystem.
	fmt.Fprintln(out, "Interpreter:")
	it, err := finder.Find(cfg.Interpreters)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %v\n", err)
		return nil, newError(InterpreterNotFound, "locating interpreter", err)
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", it.Name, it.Path)
	res := &Result{Interpreter: it}

	if cfg.Python != "" {
		v, err := interp.Version(ctx, r, it)
		if err != nil {
			return nil, newError(InterpreterNotFound, "probing interpreter version", err)
		}
		if err := interp.CheckConstraint(v, cfg.Python); err != nil {
			fmt.Fprintf(out, "  [FAIL] %s %v\n", it.Name, err)
			return nil, newError(InterpreterNotFound, fmt.Sprintf("%s at %s is not usable", it.Name, it.Path), err)
		}
		fmt.Fprintf(out, "  [ OK ] version %s satisfies %s\n", v, cfg.Python)
		res.Version = v
	}

	fmt.Fprintln(out, "Environment:")
	creator := &venv.Creator{Runner: r, Logger: log, Stdout: b.Stdout, Stderr: b.Stderr}
	created, err := creator.Ensure(ctx, out, it, layout.EnvDir)
	if err != nil {
		return nil, newError(DirectoryCreationFailure, "creating environment", err)
	}
	res.EnvCreated = created
	res.EnvPython = venv.Python(layout.EnvDir)

	fmt.Fprintln(out, "Directories:")
	for _, dir := range layout.WorkDirs() {
		made, err := project.EnsureDir(out, dir)
		if err != nil {
			return nil, newError(DirectoryCreationFailure, "ensuring working directory", err)
		}
		if made {
			res.DirsCreated = append(res.DirsCreated, dir)
		}
	}

	fmt.Fprintln(out, "Dependencies:")
	installer := &deps.Installer{Runner: r, Logger: log, Stdout: b.Stdout, Stderr: b.Stderr}
	if err := installer.Install(ctx, res.EnvPython, layout.Requirements); err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return nil, newError(InstallationFailure, "installing dependencies", err)
	}
	fmt.Fprintf(out, "  [ OK ] Installed from %s\n", layout.Requirements)

	log.Debug("bootstrap finished",
		zap.Bool("env_created", res.EnvCreated),
		zap.Int("dirs_created", len(res.DirsCreated)))
	return res, nil
}
