package deps

import (
	"context"
	"fmt"
	"io"

	"github.com/pyboot-dev/pyboot/internal/runner"
	"go.uber.org/zap"
)

// Installer runs pip from inside an environment.
type Installer struct {
	Runner runner.Runner
	Logger *zap.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// InstallArgs returns the arguments passed to the environment interpreter.
func InstallArgs(requirements string) []string {
	return []string{"-m", "pip", "install", "-r", requirements}
}

// Install runs `<python> -m pip install -r <requirements>`. It runs on every
// call; nothing is cached between runs.
func (i *Installer) Install(ctx context.Context, python, requirements string) error {
	args := InstallArgs(requirements)
	cmdLine := runner.CommandLine(python, args)

	log := i.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("installing dependencies", zap.String("command", cmdLine))

	res, err := i.Runner.Run(ctx, python, args, runner.Opts{Stdout: i.Stdout, Stderr: i.Stderr})
	if err != nil {
		return fmt.Errorf("running %s: %w", cmdLine, err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("%s exited with code %d", cmdLine, res.ExitCode)
	}
	return nil
}
