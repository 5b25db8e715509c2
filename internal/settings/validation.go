package settings

import (
	"strings"

	"gopkg.in/ini.v1"
)

// Validate checks a loaded configuration for correctness. Values coming
// from compiled defaults always pass; the checks only catch broken user
// edits of stm32pio.ini or the user-level overrides.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if strings.TrimSpace(cfg.App.PlatformIOCmd) == "" {
		errs = append(errs, ValidationError{
			Field:   "app.platformio_cmd",
			Message: "must not be empty; use the bare command or a full path to the PlatformIO executable",
			Wrapped: ErrInvalidConfig,
		})
	}

	if board := cfg.Project.Board; board != strings.TrimSpace(board) || strings.ContainsAny(board, " \t") {
		errs = append(errs, ValidationError{
			Field:   "project.board",
			Message: "must be a single PlatformIO board identifier without whitespace",
			Value:   board,
			Wrapped: ErrInvalidConfig,
		})
	}

	if cfg.Project.CubeMXScriptContent == "" {
		errs = append(errs, ValidationError{
			Field:   "project.cubemx_script_content",
			Message: "must not be empty; CubeMX cannot run headlessly without a command script",
			Wrapped: ErrInvalidConfig,
		})
	}

	// The patch fragment is merged into platformio.ini verbatim, so it has
	// to be a valid INI document on its own.
	if patch := cfg.Project.PlatformIOIniPatchContent; patch != "" {
		if _, err := ini.Load([]byte(patch)); err != nil {
			errs = append(errs, ValidationError{
				Field:   "project.platformio_ini_patch_content",
				Message: "must be a valid INI fragment mergeable into platformio.ini",
				Value:   patch,
				Wrapped: ErrInvalidINI,
			})
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
