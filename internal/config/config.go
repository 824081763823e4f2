package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for pythrow. Fields are
// pointers so the CLI can tell "unset" apart from a zero value when applying
// CLI > local > global precedence.
type FileConfig struct {
	Include       *string  `yaml:"include"`
	Exclude       *string  `yaml:"exclude"`
	MaxBytes      *int64   `yaml:"max_bytes"`
	Enable        *string  `yaml:"enable"`
	Disable       *string  `yaml:"disable"`
	MinConfidence *float64 `yaml:"min_confidence"`
	NoColor       *bool    `yaml:"no_color"`
	FailOn        *string  `yaml:"fail_on"`

	// Dynamic run config mirrors CLI flags
	Python      *string `yaml:"python"`
	Timeout     *string `yaml:"timeout"`
	NoDynamic   *bool   `yaml:"no_dynamic"`
	FailOnThrow *bool   `yaml:"fail_on_throw"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .pythrow.yml/.yaml and pythrow.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".pythrow.yml", ".pythrow.yaml", "pythrow.yml", "pythrow.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "pythrow", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
