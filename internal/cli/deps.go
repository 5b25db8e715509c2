// Package cli provides the Cobra command tree for stm32pio. This file
// defines the Dependencies struct (Composition Root) where the concrete
// services are instantiated and wired together.
package cli

import (
	"io"
	"log/slog"

	"github.com/stm32pio/stm32pio/internal/platformio"
	"github.com/stm32pio/stm32pio/internal/settings"
	"github.com/stm32pio/stm32pio/internal/ui"
)

// Dependencies holds the services shared by CLI commands.
type Dependencies struct {
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Progress ui.Progress
	Boards   *platformio.Client
	Logger   *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires the CLI services. It should be
// called once during application startup, before any command runs. The
// logger starts discarded; the root command installs the real one after
// parsing --verbose.
func InitDependencies() {
	theme := ui.DefaultTheme()
	headless := ui.NewHeadlessManager()

	deps = &Dependencies{
		Theme:    theme,
		Headless: headless,
		Progress: ui.NewProgress(theme, headless),
		Boards:   platformio.NewClient(settings.Default().App.PlatformIOCmd),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// GetDeps returns the current Dependencies instance. Returns nil if
// InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
