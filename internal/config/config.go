package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyboot-dev/pyboot/internal/branding"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const fileType = "yaml"

// Default values for every configuration key.
const (
	DefaultEnvDir       = ".venv"
	DefaultScratchDir   = "tmp"
	DefaultOutputDir    = "output_files"
	DefaultRequirements = "requirements.txt"
)

// DefaultInterpreters is the ordered list of interpreter names probed on PATH.
var DefaultInterpreters = []string{"python3", "python"}

// Config is the effective project configuration.
type Config struct {
	Interpreters []string `mapstructure:"interpreters" yaml:"interpreters"`
	Python       string   `mapstructure:"python" yaml:"python,omitempty"`
	EnvDir       string   `mapstructure:"env_dir" yaml:"env_dir"`
	ScratchDir   string   `mapstructure:"scratch_dir" yaml:"scratch_dir"`
	OutputDir    string   `mapstructure:"output_dir" yaml:"output_dir"`
	Requirements string   `mapstructure:"requirements" yaml:"requirements"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Interpreters: append([]string(nil), DefaultInterpreters...),
		EnvDir:       DefaultEnvDir,
		ScratchDir:   DefaultScratchDir,
		OutputDir:    DefaultOutputDir,
		Requirements: DefaultRequirements,
	}
}

// FilePath returns the path of the project config file under root.
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Load reads <root>/pyboot.yaml on top of the defaults. A missing file is not
// an error. The file is schema-validated before it is decoded.
func Load(root string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	path := FilePath(root)
	if _, err := os.Stat(path); err == nil {
		result, err := ValidateFile(path)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, fmt.Errorf("invalid config %s: %s", path, result.Summary())
		}

		v.SetConfigFile(path)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Python = strings.TrimSpace(cfg.Python)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("interpreters", d.Interpreters)
	v.SetDefault("python", d.Python)
	v.SetDefault("env_dir", d.EnvDir)
	v.SetDefault("scratch_dir", d.ScratchDir)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("requirements", d.Requirements)
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to <root>/pyboot.yaml.
// It refuses to overwrite an existing file.
func WriteDefault(root string) (string, error) {
	path := FilePath(root)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config already exists: %s", path)
	}

	data, err := Marshal(Default())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file %s: %w", path, err)
	}
	return path, nil
}
