package cli

import (
	"fmt"

	"github.com/pyboot-dev/pyboot/internal/config"
	"github.com/pyboot-dev/pyboot/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  `Print the configuration in effect for the project: built-in defaults overlaid with pyboot.yaml.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := project.ResolveRoot(rootDir)
		if err != nil {
			return err
		}
		cfg, err := config.Load(root)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", config.FilePath(root), data)
		return nil
	},
}
