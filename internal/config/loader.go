package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const landerFile = "lander.yaml"

// LoadLander loads the lander configuration.
// Search order: customPath -> ~/.lander/configs/lander.yaml -> ./configs/lander.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
func LoadLander(customPath string) (LanderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LanderConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return LanderConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultLanderYAML)
	if err != nil {
		return DefaultLanderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolveLanderPath returns the file LoadLander would read, or "" when it
// would fall back to the embedded default.
func ResolveLanderPath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if data, err := os.ReadFile(path); err == nil {
			if _, err := decode(data); err == nil {
				return path
			}
		}
	}
	return ""
}

// decode parses YAML over the defaults. A landing_areas key replaces the
// default pads instead of merging with them.
func decode(data []byte) (LanderConfig, error) {
	cfg := DefaultLanderConfig()
	cfg.LandingAreas = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LanderConfig{}, err
	}
	if cfg.LandingAreas == nil {
		cfg.LandingAreas = DefaultLanderConfig().LandingAreas
	}
	return cfg, nil
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(landerFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", landerFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lander", "configs", filename)
}
