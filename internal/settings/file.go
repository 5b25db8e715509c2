package settings

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/ini.v1"
)

// LoadFile reads a stm32pio.ini at path over the given base configuration.
// Keys missing from the file keep the base values. A missing file returns
// the base unchanged together with ErrConfigNotFound; broken INI syntax
// returns ErrInvalidINI. The merged result is validated before returning.
func LoadFile(path string, base Config) (Config, error) {
	cfg := base

	f, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidINI, path, err)
	}

	if err := f.Section("app").MapTo(&cfg.App); err != nil {
		return cfg, fmt.Errorf("map [app] section of %s: %w", path, err)
	}
	if err := f.Section("project").MapTo(&cfg.Project); err != nil {
		return cfg, fmt.Errorf("map [project] section of %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveFile writes the configuration to path as a two-section INI document.
// Multi-line template values survive the round-trip (written triple-quoted).
func SaveFile(cfg Config, path string) error {
	f := ini.Empty()
	if err := f.Section("app").ReflectFrom(&cfg.App); err != nil {
		return fmt.Errorf("reflect [app] section: %w", err)
	}
	if err := f.Section("project").ReflectFrom(&cfg.Project); err != nil {
		return fmt.Errorf("reflect [project] section: %w", err)
	}
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
