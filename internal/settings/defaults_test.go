package settings

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// clearCIEnv removes every CI-related variable, registering restoration
// through t.Setenv first (presence of the marker alone triggers the
// override, so an empty value is not enough).
func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{CIMarkerEnvVar, CICubeMXCacheEnvVar, TestFixturesEnvVar, TestCaseEnvVar} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestBuildDefaultsFallbackLiterals(t *testing.T) {
	clearCubeMXEnv(t)
	stubLookPath(t, failingLookPath)

	tests := []struct {
		name          string
		platform      Platform
		wantCubeMX    string
		wantCubeMXAny bool // only non-emptiness is checked (path contains $HOME)
		wantJava      string
	}{
		{
			name:       "windows",
			platform:   PlatformWindows,
			wantCubeMX: "C:/Program Files/STMicroelectronics/STM32Cube/STM32CubeMX/STM32CubeMX.exe",
			wantJava:   "C:/Program Files/STMicroelectronics/STM32Cube/STM32CubeMX/jre/bin/java.exe",
		},
		{
			name:       "macos",
			platform:   PlatformMacOS,
			wantCubeMX: "/Applications/STMicroelectronics/STM32CubeMX.app/Contents/MacOs/STM32CubeMX",
			wantJava:   JavaUnavailable,
		},
		{
			name:          "linux",
			platform:      PlatformLinux,
			wantCubeMXAny: true,
			wantJava:      JavaUnavailable,
		},
		{
			name:       "unknown",
			platform:   PlatformUnknown,
			wantCubeMX: "",
			wantJava:   JavaUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := buildDefaults(tt.platform)

			if tt.wantCubeMXAny {
				if cfg.App.CubeMXCmd == "" {
					t.Error("CubeMXCmd: got empty, want non-empty fallback")
				}
			} else if cfg.App.CubeMXCmd != tt.wantCubeMX {
				t.Errorf("CubeMXCmd: got %q, want %q", cfg.App.CubeMXCmd, tt.wantCubeMX)
			}
			if cfg.App.JavaCmd != tt.wantJava {
				t.Errorf("JavaCmd: got %q, want %q", cfg.App.JavaCmd, tt.wantJava)
			}
			if cfg.App.PlatformIOCmd != "platformio" {
				t.Errorf("PlatformIOCmd: got %q, want \"platformio\"", cfg.App.PlatformIOCmd)
			}
		})
	}
}

func TestBuildDefaultsProjectSection(t *testing.T) {
	clearCubeMXEnv(t)
	stubLookPath(t, failingLookPath)

	cfg := buildDefaults(PlatformLinux)

	for _, placeholder := range []string{"${ioc_file_absolute_path}", "${project_dir_absolute_path}"} {
		if !strings.Contains(cfg.Project.CubeMXScriptContent, placeholder) {
			t.Errorf("CubeMXScriptContent: missing literal placeholder %q", placeholder)
		}
	}
	for _, fragment := range []string{"[platformio]", "include_dir = Inc", "src_dir = Src"} {
		if !strings.Contains(cfg.Project.PlatformIOIniPatchContent, fragment) {
			t.Errorf("PlatformIOIniPatchContent: missing %q", fragment)
		}
	}
	if cfg.Project.Board != "" {
		t.Errorf("Board: got %q, want empty", cfg.Project.Board)
	}
	if cfg.Project.IOCFile != "" {
		t.Errorf("IOCFile: got %q, want empty", cfg.Project.IOCFile)
	}
	if cfg.Project.CleanupUseGit {
		t.Error("CleanupUseGit: got true, want false")
	}
	if !cfg.Project.InspectIOC {
		t.Error("InspectIOC: got false, want true")
	}
}

func TestNewDefaultConfigIdempotent(t *testing.T) {
	clearCubeMXEnv(t)
	clearCIEnv(t)
	stubLookPath(t, failingLookPath)

	first := NewDefaultConfig()
	second := NewDefaultConfig()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("NewDefaultConfig not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDefaultHandsOutCopies(t *testing.T) {
	first := Default()
	mutated := first
	mutated.App.CubeMXCmd = "tampered"

	second := Default()
	if second.App.CubeMXCmd == "tampered" {
		t.Error("Default() shared state was mutated through a returned value")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Default() returned structurally different values across calls")
	}
}

func TestCIOverrideReplacesAppSection(t *testing.T) {
	clearCubeMXEnv(t)
	clearCIEnv(t)
	stubLookPath(t, failingLookPath)

	t.Setenv(CIMarkerEnvVar, "/agent/_work")
	t.Setenv(CICubeMXCacheEnvVar, "/cache")

	cfg := NewDefaultConfig()

	if want := filepath.Join("/cache", "STM32CubeMX.exe"); cfg.App.CubeMXCmd != want {
		t.Errorf("CubeMXCmd: got %q, want %q", cfg.App.CubeMXCmd, want)
	}
	if cfg.App.JavaCmd != "java" {
		t.Errorf("JavaCmd: got %q, want \"java\"", cfg.App.JavaCmd)
	}
	if cfg.App.PlatformIOCmd != "platformio" {
		t.Errorf("PlatformIOCmd: got %q, want \"platformio\"", cfg.App.PlatformIOCmd)
	}
}

func TestCIOverrideTriggersOnPresenceNotValue(t *testing.T) {
	clearCubeMXEnv(t)
	clearCIEnv(t)
	stubLookPath(t, failingLookPath)

	t.Setenv(CIMarkerEnvVar, "") // present but empty still counts
	t.Setenv(CICubeMXCacheEnvVar, "/cache")

	cfg := NewDefaultConfig()
	if cfg.App.JavaCmd != "java" {
		t.Errorf("JavaCmd with empty marker value: got %q, want \"java\"", cfg.App.JavaCmd)
	}
}

func TestNoCIOverrideWithoutMarker(t *testing.T) {
	clearCubeMXEnv(t)
	clearCIEnv(t)
	stubLookPath(t, failingLookPath)

	cfg := NewDefaultConfig()
	local := buildDefaults(CurrentPlatform())
	if !reflect.DeepEqual(cfg.App, local.App) {
		t.Errorf("app section without CI marker:\ngot  %+v\nwant %+v", cfg.App, local.App)
	}
}

func TestCIOverrideAppendsLockfileFixture(t *testing.T) {
	clearCubeMXEnv(t)
	clearCIEnv(t)
	stubLookPath(t, failingLookPath)

	fixtures := t.TempDir()
	caseDir := filepath.Join(fixtures, "case-nucleo")
	if err := os.MkdirAll(caseDir, 0o755); err != nil {
		t.Fatal(err)
	}
	lockContent := "[env:nucleo_f031k6]\nplatform = ststm32"
	if err := os.WriteFile(filepath.Join(caseDir, "platformio.ini.lockfile"), []byte(lockContent), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(CIMarkerEnvVar, "1")
	t.Setenv(CICubeMXCacheEnvVar, "/cache")
	t.Setenv(TestFixturesEnvVar, fixtures)
	t.Setenv(TestCaseEnvVar, "case-nucleo")

	cfg := NewDefaultConfig()
	if !strings.HasSuffix(cfg.Project.PlatformIOIniPatchContent, "\n\n"+lockContent) {
		t.Errorf("patch content lacks fixture suffix:\n%s", cfg.Project.PlatformIOIniPatchContent)
	}
}

func TestCIOverrideMissingLockfileIsNoOp(t *testing.T) {
	clearCubeMXEnv(t)
	clearCIEnv(t)
	stubLookPath(t, failingLookPath)

	t.Setenv(CIMarkerEnvVar, "1")
	t.Setenv(CICubeMXCacheEnvVar, "/cache")
	t.Setenv(TestFixturesEnvVar, t.TempDir())
	t.Setenv(TestCaseEnvVar, "missing-case")

	cfg := NewDefaultConfig()
	if cfg.Project.PlatformIOIniPatchContent != platformioIniPatch {
		t.Errorf("patch content changed despite missing lockfile:\n%s", cfg.Project.PlatformIOIniPatchContent)
	}
}

func TestExposedConstants(t *testing.T) {
	t.Parallel()

	if ConfigFileName != "stm32pio.ini" {
		t.Errorf("ConfigFileName: got %q", ConfigFileName)
	}
	if CubeMXSuccessMarker != "Code succesfully generated" {
		t.Errorf("CubeMXSuccessMarker: got %q", CubeMXSuccessMarker)
	}
	if CubeMXErrorMarker != "Exception in code generation" {
		t.Errorf("CubeMXErrorMarker: got %q", CubeMXErrorMarker)
	}
	if LogFieldWidth != 20 {
		t.Errorf("LogFieldWidth: got %d, want 20", LogFieldWidth)
	}
	if PIOBoardsCacheLifetime != 5*time.Second {
		t.Errorf("PIOBoardsCacheLifetime: got %v, want 5s", PIOBoardsCacheLifetime)
	}
	if !IsNone(JavaUnavailable) {
		t.Error("JavaUnavailable must be matched by IsNone")
	}
}
