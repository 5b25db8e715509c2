package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stm32pio/stm32pio/internal/settings"
)

func TestFindIOC(t *testing.T) {
	dir := t.TempDir()

	if _, err := FindIOC(dir); !errors.Is(err, ErrNoIOCFile) {
		t.Errorf("FindIOC(empty) error = %v, want ErrNoIOCFile", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "one.ioc"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := FindIOC(dir)
	if err != nil {
		t.Fatalf("FindIOC(single) error = %v", err)
	}
	if filepath.Base(got) != "one.ioc" {
		t.Errorf("FindIOC() = %q, want one.ioc", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "two.ioc"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FindIOC(dir); !errors.Is(err, ErrMultipleIOCFiles) {
		t.Errorf("FindIOC(two files) error = %v, want ErrMultipleIOCFiles", err)
	}
}

func TestIOCFilePrefersConfiguredName(t *testing.T) {
	p := newTestProject(t)
	if err := os.WriteFile(filepath.Join(p.Root(), "other.ioc"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := p.manager.Update(func(c *settings.Config) {
		c.Project.IOCFile = "other.ioc"
	}); err != nil {
		t.Fatal(err)
	}

	got, err := p.iocFile()
	if err != nil {
		t.Fatalf("iocFile() error = %v", err)
	}
	if filepath.Base(got) != "other.ioc" {
		t.Errorf("iocFile() = %q, want the configured other.ioc", got)
	}
}

func TestIOCFileConfiguredNameAbsent(t *testing.T) {
	p := newTestProject(t)
	if err := p.manager.Update(func(c *settings.Config) {
		c.Project.IOCFile = "gone.ioc"
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.iocFile(); !errors.Is(err, ErrNoIOCFile) {
		t.Errorf("iocFile() with absent configured name error = %v, want ErrNoIOCFile", err)
	}
}

func TestParseIOC(t *testing.T) {
	data := []byte("#MicroXplorer Configuration settings\n" +
		"board=NUCLEO-F031K6\n" +
		"ProjectManager.TargetToolchain=Other Toolchains (GPDSC)\n" +
		"\n" +
		"malformed line without equals\n" +
		"Mcu.Family=STM32F0\n")

	values := parseIOC(data)
	if got := values["board"]; got != "NUCLEO-F031K6" {
		t.Errorf("board = %q", got)
	}
	if got := values["ProjectManager.TargetToolchain"]; got != "Other Toolchains (GPDSC)" {
		t.Errorf("toolchain = %q", got)
	}
	if got := values["Mcu.Family"]; got != "STM32F0" {
		t.Errorf("Mcu.Family = %q", got)
	}
	if _, ok := values["#MicroXplorer Configuration settings"]; ok {
		t.Error("comment line was parsed as a value")
	}
}

func TestInspectIOCToolchainWarning(t *testing.T) {
	p := newTestProject(t)
	path := filepath.Join(p.Root(), "test.ioc")
	if err := os.WriteFile(path, []byte("ProjectManager.TargetToolchain=EWARM\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	warnings := p.inspectIOC(path)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "EWARM") {
		t.Errorf("inspectIOC() = %v, want a toolchain warning naming EWARM", warnings)
	}
}

func TestInspectIOCBoardMismatch(t *testing.T) {
	p := newTestProject(t)
	if err := p.manager.Update(func(c *settings.Config) {
		c.Project.Board = "nucleo_l432kc"
	}); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(p.Root(), "test.ioc")
	if err := os.WriteFile(path, []byte(
		"board=NUCLEO-F031K6\nProjectManager.TargetToolchain=Other Toolchains (GPDSC)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	warnings := p.inspectIOC(path)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "nucleo_l432kc") {
		t.Errorf("inspectIOC() = %v, want a board mismatch warning", warnings)
	}
}

func TestInspectIOCQuietWhenConsistent(t *testing.T) {
	p := newTestProject(t)
	path := filepath.Join(p.Root(), "test.ioc")
	if err := os.WriteFile(path, []byte(
		"board=custom\nProjectManager.TargetToolchain=Other Toolchains (GPDSC)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if warnings := p.inspectIOC(path); len(warnings) != 0 {
		t.Errorf("inspectIOC() = %v, want no warnings", warnings)
	}
}
