package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirName is the per-user directory holding configs, screenshots and the
// round log.
const DirName = ".crossing"

const crossingFile = "crossing.yaml"

// LoadCrossing loads the crossing configuration.
// Search order: customPath -> ~/.crossing/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. The result is validated.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(crossingFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, loaded.Validate()
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", crossingFile)); ok {
		return loaded, loaded.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCrossingYAML, &cfg); err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// tryLoad decodes path over the defaults. Unreadable or malformed files are
// skipped so the next location in the search order is used.
func tryLoad(path string) (CrossingConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrossingConfig{}, false
	}
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrossingConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DirName, "configs", filename)
}
