package cli

import (
	"context"
	"fmt"

	"github.com/pyboot-dev/pyboot/internal/branding"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	rootDir string
	verbose bool

	logger *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Project root (default: nearest directory with pyboot.yaml or requirements.txt)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` prepares a project's Python environment in one idempotent step:
it finds an interpreter, creates the virtual environment once, ensures the
scratch and output directories exist, and installs the declared dependencies.

Run without arguments to bootstrap the current project.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSetup,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.ExecuteContext(context.Background())
}
