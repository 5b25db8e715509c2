package settings

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// testBase is a fully valid configuration independent of the host
// environment, used as the merge base in file tests.
func testBase() Config {
	return Config{
		App: AppConfig{
			PlatformIOCmd: "platformio",
			CubeMXCmd:     "/opt/cubemx/STM32CubeMX",
			JavaCmd:       JavaUnavailable,
		},
		Project: ProjectConfig{
			CubeMXScriptContent:       cubemxScriptTemplate,
			PlatformIOIniPatchContent: platformioIniPatch,
			InspectIOC:                true,
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := testBase()
	cfg.Project.Board = "nucleo_f031k6"
	cfg.Project.IOCFile = "sample.ioc"
	cfg.Project.CleanupUseGit = true

	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := SaveFile(cfg, path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	loaded, err := LoadFile(path, testBase())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", cfg, loaded)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	base := testBase()
	loaded, err := LoadFile(filepath.Join(t.TempDir(), ConfigFileName), base)
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadFile on missing file: got error %v, want ErrConfigNotFound", err)
	}
	if !reflect.DeepEqual(loaded, base) {
		t.Error("LoadFile on missing file must return the base unchanged")
	}
}

func TestLoadFilePartialKeepsBase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "[project]\nboard = discovery_f4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	base := testBase()
	loaded, err := LoadFile(path, base)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Project.Board != "discovery_f4" {
		t.Errorf("Board: got %q, want \"discovery_f4\"", loaded.Project.Board)
	}
	if loaded.App != base.App {
		t.Errorf("app section must keep base values, got %+v", loaded.App)
	}
	if loaded.Project.CubeMXScriptContent != base.Project.CubeMXScriptContent {
		t.Error("script template must keep base value when absent from file")
	}
}

func TestLoadFileBrokenSyntax(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("[app\nplatformio_cmd"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path, testBase()); !errors.Is(err, ErrInvalidINI) {
		t.Errorf("LoadFile on broken INI: got error %v, want ErrInvalidINI", err)
	}
}

func TestLoadFileValidatesMergedResult(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("[app]\nplatformio_cmd = \" \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path, testBase()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadFile with blank platformio_cmd: got error %v, want ErrInvalidConfig", err)
	}
}
