package project

import (
	"path/filepath"

	"github.com/pyboot-dev/pyboot/internal/config"
)

// Layout holds the absolute paths the bootstrapper works with.
type Layout struct {
	Root         string
	EnvDir       string
	ScratchDir   string
	OutputDir    string
	Requirements string
}

// NewLayout derives the layout from a project root and its configuration.
// Relative config paths are joined onto root; absolute ones are kept.
func NewLayout(root string, cfg *config.Config) Layout {
	return Layout{
		Root:         root,
		EnvDir:       under(root, cfg.EnvDir),
		ScratchDir:   under(root, cfg.ScratchDir),
		OutputDir:    under(root, cfg.OutputDir),
		Requirements: under(root, cfg.Requirements),
	}
}

// WorkDirs returns the working directories that are ensured on every run.
func (l Layout) WorkDirs() []string {
	return []string{l.ScratchDir, l.OutputDir}
}

func under(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
