package linter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/openapi-jsonapi/jsonapi-lint/system"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath returns ~/.jsonapi-lint/lint.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".jsonapi-lint", "lint.yaml"), nil
}

// LoadConfig loads lint configuration from a YAML reader.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Extends) == 0 {
		cfg.Extends = []string{RulesetAll}
	}
	if cfg.Categories == nil {
		cfg.Categories = make(map[string]CategoryConfig)
	}
	if cfg.Rules == nil {
		cfg.Rules = []RuleEntry{}
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputFormatText
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadConfigFromFile loads lint configuration from a YAML file. Relative
// custom rule paths are resolved against the config file's directory.
func LoadConfigFromFile(fsys system.VirtualFS, path string) (*Config, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, err
	}

	if cfg.CustomRules != nil {
		dir := filepath.Dir(path)
		for i, p := range cfg.CustomRules.Paths {
			if !filepath.IsAbs(p) {
				cfg.CustomRules.Paths[i] = filepath.Join(dir, p)
			}
		}
	}

	return cfg, nil
}
