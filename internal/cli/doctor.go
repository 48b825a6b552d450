package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pyboot-dev/pyboot/internal/config"
	"github.com/pyboot-dev/pyboot/internal/deps"
	"github.com/pyboot-dev/pyboot/internal/interp"
	"github.com/pyboot-dev/pyboot/internal/project"
	"github.com/pyboot-dev/pyboot/internal/runner"
	"github.com/pyboot-dev/pyboot/internal/venv"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report the state of the project environment without changing it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := project.ResolveRoot(rootDir)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Project: %s\n", root)

		cfg, problems := checkConfig(w, root)
		if cfg == nil {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		layout := project.NewLayout(root, cfg)

		problems += checkInterpreter(cmd, w, cfg)
		problems += checkEnvironment(w, layout)
		problems += checkWorkDirs(w, layout)
		problems += checkRequirements(w, layout)

		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		fmt.Fprintln(w, "\nNo problems found.")
		return nil
	},
}

func checkConfig(w io.Writer, root string) (*config.Config, int) {
	fmt.Fprintln(w, "Config:")
	path := config.FilePath(root)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] %s not found, using defaults\n", path)
	}

	cfg, err := config.Load(root)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return nil, 1
	}
	fmt.Fprintf(w, "  [ OK ] interpreters: %v\n", cfg.Interpreters)
	return cfg, 0
}

func checkInterpreter(cmd *cobra.Command, w io.Writer, cfg *config.Config) int {
	fmt.Fprintln(w, "Interpreter:")
	it, err := (&interp.Finder{}).Find(cfg.Interpreters)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", it.Name, it.Path)

	v, err := interp.Version(cmd.Context(), runner.New(), it)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] could not determine version: %v\n", err)
		if cfg.Python != "" {
			return 1
		}
		return 0
	}
	if err := interp.CheckConstraint(v, cfg.Python); err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] version %s\n", v)
	return 0
}

func checkEnvironment(w io.Writer, layout project.Layout) int {
	fmt.Fprintln(w, "Environment:")
	info, err := os.Stat(layout.EnvDir)
	switch {
	case os.IsNotExist(err):
		fmt.Fprintf(w, "  [MISS] %s not created yet\n", layout.EnvDir)
		return 1
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	case !info.IsDir():
		fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", layout.EnvDir)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", layout.EnvDir)

	py := venv.Python(layout.EnvDir)
	if _, err := os.Stat(py); err != nil {
		// Existing environments are never repaired; say so rather than fail.
		fmt.Fprintf(w, "  [WARN] %s missing; delete %s to recreate it\n", py, layout.EnvDir)
		return 0
	}
	fmt.Fprintf(w, "  [ OK ] %s present\n", py)
	return 0
}

func checkWorkDirs(w io.Writer, layout project.Layout) int {
	fmt.Fprintln(w, "Directories:")
	problems := 0
	for _, dir := range layout.WorkDirs() {
		info, err := os.Stat(dir)
		switch {
		case os.IsNotExist(err):
			fmt.Fprintf(w, "  [MISS] %s\n", dir)
			problems++
		case err != nil:
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			problems++
		case !info.IsDir():
			fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", dir)
			problems++
		default:
			fmt.Fprintf(w, "  [ OK ] %s\n", dir)
		}
	}
	return problems
}

func checkRequirements(w io.Writer, layout project.Layout) int {
	fmt.Fprintln(w, "Dependencies:")
	reqs, err := deps.ReadRequirements(layout.Requirements)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(w, "  [MISS] %s not found\n", layout.Requirements)
		} else {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
		}
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %d requirement(s) declared in %s\n", len(reqs), layout.Requirements)
	return 0
}
