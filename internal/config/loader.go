package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// LoadCycles loads the duel configuration.
// Search order: customPath -> ~/.lightcycle/configs/cycles.yaml ->
// ./configs/cycles.yaml -> embedded default. Only an explicitly given
// customPath is allowed to fail loudly; the fallback chain is silent.
func LoadCycles(customPath string) (CyclesConfig, error) {
	var cfg CyclesConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cycles.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cycles.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCyclesYAML, &cfg); err != nil {
		return DefaultCyclesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lightcycle", "configs", filename)
}

// ApplyBlitzPreset tightens the configuration for the blitz variant:
// twice the steering pressure and a longer series.
func ApplyBlitzPreset(cfg *CyclesConfig) {
	cfg.Cadence.MoveEveryTicks = core.Max(1, cfg.Cadence.MoveEveryTicks/2)
	cfg.Match.BestOf = 5
}
