// Package branding provides compile-time identity values for the CLI.
//
// The values are baked into the binary from branding.yaml via //go:embed, so a
// fork only has to edit that file to rename the tool.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	ConfigFile  string `yaml:"config_file"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "pyboot",
			DisplayName: "pyboot",
			Description: "Idempotent Python environment bootstrapper",
			ConfigFile:  "pyboot.yaml",
			GoModule:    "github.com/pyboot-dev/pyboot",
			GitHubRepo:  "pyboot-dev/pyboot",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "pyboot").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfigFile returns the project config file name looked up at the project root.
func ConfigFile() string { load(); return defaults.ConfigFile }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }
