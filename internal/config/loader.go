package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the adventure configuration.
// Search order: customPath -> ~/.adventure/configs/adventure.yaml ->
// ./configs/adventure.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the fields it
// changes.
func Load(customPath string) (AdventureConfig, error) {
	cfg := DefaultAdventureConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		cfg.sanitize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("adventure.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.sanitize()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	cfg = DefaultAdventureConfig()
	if data, err := os.ReadFile(filepath.Join("configs", "adventure.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.sanitize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = DefaultAdventureConfig()
	if err := yaml.Unmarshal(defaultAdventureYAML, &cfg); err != nil {
		return DefaultAdventureConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.sanitize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".adventure", "configs", filename)
}
