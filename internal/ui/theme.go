// Package ui provides the terminal surfaces of stm32pio: spinners and
// progress bars for long tool invocations, interactive board selection,
// and headless-mode detection for CI and editor integrations.
package ui

// Theme holds the palette and output preferences shared by the UI
// components.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// Colors is the accent palette used for spinners and progress gradients.
type Colors struct {
	Primary   string
	Secondary string
}

// DefaultTheme returns the standard palette, ST-blue accents.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: Colors{
			Primary:   "#3CB4E6",
			Secondary: "#03234B",
		},
	}
}
