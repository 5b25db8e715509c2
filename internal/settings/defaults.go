package settings

import (
	"log/slog"
	"sync"
	"time"

	"github.com/stm32pio/stm32pio/internal/defs"
)

// ConfigFileName is the per-project configuration file seeded from the
// defaults below.
const ConfigFileName = defs.ConfigINI

// CubeMX exit code 0 does not necessarily mean a successful operation
// (e.g. a migration dialog appeared and was cancelled, or the CubeMX
// version is older than the .ioc one), so callers classify the actual
// output with these markers instead. The success string carries the
// vendor's own spelling.
const (
	CubeMXSuccessMarker = "Code succesfully generated"
	CubeMXErrorMarker   = "Exception in code generation"
)

// JavaUnavailable marks a knowingly absent Java command, distinct from ""
// (never resolved) and from a concrete path. It is a member of NoneOptions,
// so callers uniformly test it with IsNone.
const JavaUnavailable = "none"

// LogFieldWidth pads the operation name in log records so multi-project
// output lines up in columns.
const LogFieldWidth = 20

// ShowTracebackThresholdLevel gates error detail in log records: full
// error chains are attached only when the logger runs at or below it.
const ShowTracebackThresholdLevel = slog.LevelDebug

// PIOBoardsCacheLifetime bounds how long a previously fetched PlatformIO
// boards list may be served before the tool is queried again.
const PIOBoardsCacheLifetime = 5 * time.Second

// cubemxScriptTemplate drives headless code generation. Placeholders are
// kept literal; the project layer substitutes them.
const cubemxScriptTemplate = `config load ${ioc_file_absolute_path}
generate code ${project_dir_absolute_path}
exit`

// platformioIniPatch makes PlatformIO pick up the CubeMX directory layout.
const platformioIniPatch = `[platformio]
include_dir = Inc
src_dir = Src`

var (
	defaultOnce sync.Once
	defaultCfg  Config
)

// Default returns the process-wide default configuration. It is computed
// once on first use (including the CI override pass) and handed out by
// value afterwards, so repeated calls are cheap and callers can never
// mutate the shared state.
func Default() Config {
	defaultOnce.Do(func() {
		defaultCfg = NewDefaultConfig()
	})
	return defaultCfg
}

// NewDefaultConfig computes the default configuration from the current
// environment and filesystem state. It always succeeds: unresolved tools
// degrade to fallback literals or sentinels. Two calls under identical
// environment and filesystem state yield structurally equal results.
func NewDefaultConfig() Config {
	cfg := buildDefaults(CurrentPlatform())
	applyCIOverrides(&cfg)
	return cfg
}

// buildDefaults assembles the two-section defaults for the given platform.
func buildDefaults(p Platform) Config {
	cubemx := locateCubeMX(p)
	if cubemx == "" {
		cubemx = fallbackCubeMX(p)
	}

	java := locateBundledJava(cubemx, p)
	if java == "" {
		java = fallbackJava(p)
	}

	return Config{
		App: AppConfig{
			// PlatformIO registers itself in PATH on installation, so the
			// bare command is the expected spelling.
			PlatformIOCmd: "platformio",
			CubeMXCmd:     cubemx,
			JavaCmd:       java,
		},
		Project: ProjectConfig{
			CubeMXScriptContent:       cubemxScriptTemplate,
			PlatformIOIniPatchContent: platformioIniPatch,
			InspectIOC:                true,
		},
	}
}
