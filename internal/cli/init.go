package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyboot-dev/pyboot/internal/branding"
	"github.com/pyboot-dev/pyboot/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + branding.ConfigFile(),
	Long: `Write a ` + branding.ConfigFile() + ` with the default settings to the project root.

The root is --root when given, otherwise the current directory. An existing
config file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := rootDir
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			root = cwd
		}
		root, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolving project root: %w", err)
		}

		path, err := config.WriteDefault(root)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Run '%s' to bootstrap the environment.\n", branding.CLIName())
		return nil
	},
}
