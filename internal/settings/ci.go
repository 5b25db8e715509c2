package settings

import (
	"os"
	"path/filepath"

	"github.com/stm32pio/stm32pio/internal/defs"
)

// Continuous-integration tweaks. Triggered solely by the presence of the
// marker variable; normal and local test runs are unaffected.

const (
	// CIMarkerEnvVar signals execution inside a CI pipeline when present,
	// regardless of its value.
	CIMarkerEnvVar = "PIPELINE_WORKSPACE"

	// CICubeMXCacheEnvVar names the CI cache folder holding STM32CubeMX.exe.
	CICubeMXCacheEnvVar = "STM32PIO_CUBEMX_CACHE_FOLDER"

	// TestFixturesEnvVar points at the test fixtures root directory.
	TestFixturesEnvVar = "STM32PIO_TEST_FIXTURES"

	// TestCaseEnvVar names the fixture subdirectory of the running test case.
	TestCaseEnvVar = "STM32PIO_TEST_CASE"
)

// applyCIOverrides replaces the app section with CI-appropriate values and
// appends the per-test-case platformio.ini lockfile to the patch template.
// It runs strictly after buildDefaults and before any caller can observe
// the configuration. Each sub-step is independent and best-effort: a
// missing fixture file simply appends nothing.
func applyCIOverrides(cfg *Config) {
	if _, present := os.LookupEnv(CIMarkerEnvVar); !present {
		return
	}

	cfg.App = AppConfig{
		PlatformIOCmd: "platformio",
		CubeMXCmd:     filepath.Join(os.Getenv(CICubeMXCacheEnvVar), "STM32CubeMX.exe"),
		// Java is pre-installed and on PATH on CI agents.
		JavaCmd: "java",
	}

	fixtures := os.Getenv(TestFixturesEnvVar)
	testCase := os.Getenv(TestCaseEnvVar)
	if fixtures == "" || testCase == "" {
		return
	}
	lockfile := filepath.Join(fixtures, testCase, defs.PlatformIOINILockfile)
	data, err := os.ReadFile(lockfile)
	if err != nil {
		return
	}
	cfg.Project.PlatformIOIniPatchContent += "\n\n" + string(data)
}
