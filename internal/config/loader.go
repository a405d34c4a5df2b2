package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// appName is the XDG subdirectory used for config, data and state files.
const appName = "bonarun"

// LoadRunner loads the runner configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/bonarun/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath, err := xdg.SearchConfigFile(appName + "/runner.yaml"); err == nil {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunner decodes YAML over the hard-coded defaults and validates the result.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Encode renders the configuration as YAML.
func (c RunnerConfig) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}

// DataFile returns the path of a file under the XDG data directory,
// creating parent directories as needed.
func DataFile(name string) (string, error) {
	path, err := xdg.DataFile(appName + "/" + name)
	if err != nil {
		return "", fmt.Errorf("config: cannot resolve data file %s: %w", name, err)
	}
	return path, nil
}

// StateFile returns the path of a file under the XDG state directory,
// creating parent directories as needed.
func StateFile(name string) (string, error) {
	path, err := xdg.StateFile(appName + "/" + name)
	if err != nil {
		return "", fmt.Errorf("config: cannot resolve state file %s: %w", name, err)
	}
	return path, nil
}
