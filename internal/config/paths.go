package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigEnvVar names the environment variable that overrides the config file location.
const ConfigEnvVar = "RL_CONFIG"

// DefaultConfigPath returns the config file location
// Priority order:
//  1. RL_CONFIG environment variable (if set)
//  2. <user config dir>/rl/config.yaml
func DefaultConfigPath() (string, error) {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}

	return filepath.Join(dir, "rl", "config.yaml"), nil
}

// Load resolves the config file (explicit path first, then DefaultConfigPath)
// and loads it. An unresolvable default location falls back to the defaults.
func Load(explicit string) (*Config, error) {
	if explicit != "" {
		cfg, err := LoadConfig(explicit)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", explicit, err)
		}
		return cfg, nil
	}

	p, err := DefaultConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(p)
}
