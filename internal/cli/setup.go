package cli

import (
	"fmt"

	"github.com/pyboot-dev/pyboot/internal/bootstrap"
	"github.com/pyboot-dev/pyboot/internal/config"
	"github.com/pyboot-dev/pyboot/internal/project"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Bootstrap the project environment (same as running with no command)",
	Long: `Find an interpreter, create the virtual environment if it is missing,
ensure the scratch and output directories, then install the dependency list.

The environment is created once and reused on later runs; dependency
installation runs every time.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	root, err := project.ResolveRoot(rootDir)
	if err != nil {
		return err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	layout := project.NewLayout(root, cfg)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Bootstrapping %s\n", root)

	b := bootstrap.New(out, out, cmd.ErrOrStderr(), logger)
	res, err := b.Run(cmd.Context(), layout, cfg)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Debug("environment ready",
			zap.String("env", layout.EnvDir),
			zap.String("interpreter", res.Interpreter.Path),
			zap.Bool("created", res.EnvCreated))
	}
	fmt.Fprintf(out, "\nEnvironment ready: %s\n", layout.EnvDir)
	return nil
}
