package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for crackodile.
type FileConfig struct {
	Wordlists     []string `yaml:"wordlists"`
	Length        *int     `yaml:"length"`
	Digits        *string  `yaml:"digits"`
	Symbols       *string  `yaml:"symbols"`
	Budget        *int64   `yaml:"budget"`
	ProgressEvery *int64   `yaml:"progress_every"`
	Output        *string  `yaml:"output"`
	FailOn        *string  `yaml:"fail_on"`
	NoColor       *bool    `yaml:"no_color"`
	NoHistory     *bool    `yaml:"no_history"`
	NoUpdateCheck *bool    `yaml:"no_update_check"`
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

// LoadLocal searches for a config file in the given directory.
// It supports .crackodile.yml/.yaml and crackodile.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".crackodile.yml", ".crackodile.yaml", "crackodile.yml", "crackodile.yaml"} {
		p := filepath.Join(dir, name)
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
	p := filepath.Join(base, "crackodile", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
