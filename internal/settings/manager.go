package settings

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
)

// Manager provides thread-safe access to one project's configuration.
// It must be initialized via Load() before use.
type Manager struct {
	mu       sync.RWMutex
	root     string
	cfg      Config
	fromFile bool
}

// NewManager creates a Manager for the project rooted at projectRoot.
func NewManager(projectRoot string) *Manager {
	return &Manager{root: filepath.Clean(projectRoot)}
}

// Path returns the location of the project's stm32pio.ini.
func (m *Manager) Path() string {
	return filepath.Join(m.root, ConfigFileName)
}

// Load merges, lowest to highest priority: compiled defaults, the optional
// user-level overrides file, the project's stm32pio.ini. A project without
// a stm32pio.ini is not an error, only an uninitialized one.
func (m *Manager) Load() (Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := Default()

	if path, err := UserSettingsPath(); err == nil {
		loaded, err := applyUserOverridesFrom(&cfg, path)
		if err != nil {
			slog.Warn("failed to load user settings, using defaults", "error", err)
		} else if loaded {
			slog.Debug("applied user-level settings overrides", "path", path)
		}
	}

	merged, err := LoadFile(m.Path(), cfg)
	switch {
	case errors.Is(err, ErrConfigNotFound):
		m.cfg = cfg
		m.fromFile = false
	case err != nil:
		return Config{}, err
	default:
		m.cfg = merged
		m.fromFile = true
	}
	return m.cfg, nil
}

// Config returns the current configuration value.
func (m *Manager) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// FromFile reports whether the last Load found a stm32pio.ini on disk.
func (m *Manager) FromFile() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fromFile
}

// Update applies fn to a copy of the configuration, validates the result
// and installs it. The stored configuration is untouched on failure.
func (m *Manager) Update(fn func(*Config)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	updated := m.cfg
	fn(&updated)
	if err := Validate(&updated); err != nil {
		return err
	}
	m.cfg = updated
	return nil
}

// Save writes the current configuration to the project's stm32pio.ini.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := SaveFile(m.cfg, m.Path()); err != nil {
		return err
	}
	m.fromFile = true
	return nil
}
