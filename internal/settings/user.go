package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stm32pio/stm32pio/internal/defs"
)

// userOverrides mirrors the optional ~/.stm32pio/settings.yaml file. Only
// app-level tool paths make sense globally; project parameters stay in the
// per-project stm32pio.ini.
type userOverrides struct {
	App AppConfig `yaml:"app"`
}

// UserSettingsPath returns the location of the user-level settings
// override file.
func UserSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(home, defs.UserSettingsDir, defs.UserSettingsYAML), nil
}

// applyUserOverridesFrom overlays non-empty app values from the YAML file
// at path onto cfg. Returns (true, nil) if the file was found and parsed,
// (false, nil) if it does not exist, or (false, error) on failure.
func applyUserOverridesFrom(cfg *Config, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var o userOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	if o.App.PlatformIOCmd != "" {
		cfg.App.PlatformIOCmd = o.App.PlatformIOCmd
	}
	if o.App.CubeMXCmd != "" {
		cfg.App.CubeMXCmd = o.App.CubeMXCmd
	}
	if o.App.JavaCmd != "" {
		cfg.App.JavaCmd = o.App.JavaCmd
	}
	return true, nil
}
