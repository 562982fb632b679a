// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.fcenv/config.yaml consistently.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// HomeDir is the per-user configuration directory under $HOME.
const HomeDir = ".fcenv"

// GlobalConfig represents the ~/.fcenv/config.yaml global configuration.
// Every field is an optional default; command-line flags win over all of
// them.
type GlobalConfig struct {
	Version      int    `yaml:"version"`
	PythonPath   string `yaml:"python_path,omitempty"`
	VenvDir      string `yaml:"venv_dir,omitempty"`
	TargetScript string `yaml:"target_script,omitempty"`
	LastSetup    string `yaml:"last_setup,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// GlobalConfigPath returns the path to the global config file. Respects
// FCENV_CONFIG_PATH and FCENV_CONFIG_HOME overrides.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv("FCENV_CONFIG_PATH")); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(os.Getenv("FCENV_CONFIG_HOME")); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadGlobalConfigOrDefault loads the global config, falling back to the
// defaults when the file is missing or its path cannot be resolved.
func LoadGlobalConfigOrDefault() GlobalConfig {
	path, err := GlobalConfigPath()
	if err != nil {
		return DefaultGlobalConfig()
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		return DefaultGlobalConfig()
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	return cfg
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
