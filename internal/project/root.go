package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyboot-dev/pyboot/internal/branding"
	"github.com/pyboot-dev/pyboot/internal/config"
)

// FindRoot returns the project root for start. It walks upward from start to
// the first directory containing the project config file or the default
// dependency list. When no marker is found, start itself is the root.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	markers := []string{branding.ConfigFile(), config.DefaultRequirements}
	for dir := abs; ; {
		for _, m := range markers {
			if info, err := os.Stat(filepath.Join(dir, m)); err == nil && !info.IsDir() {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}

// ResolveRoot returns explicit as an absolute path when set, and otherwise
// searches upward from the current working directory.
func ResolveRoot(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolving project root %s: %w", explicit, err)
		}
		return abs, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return FindRoot(cwd)
}
