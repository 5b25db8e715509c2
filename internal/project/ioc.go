package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stm32pio/stm32pio/internal/defs"
)

// FindIOC returns the single CubeMX .ioc file in dir.
func FindIOC(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+defs.IOCExt))
	if err != nil {
		return "", fmt.Errorf("scan for .ioc files: %w", err)
	}
	switch len(matches) {
	case 0:
		return "", ErrNoIOCFile
	case 1:
		return matches[0], nil
	default:
		return "", ErrMultipleIOCFiles
	}
}

// iocFile resolves the project's .ioc file: the configured ioc_file when
// set, otherwise the single .ioc in the project root.
func (p *Project) iocFile() (string, error) {
	if name := p.manager.Config().Project.IOCFile; name != "" {
		path := filepath.Join(p.root, name)
		if !fileExists(path) {
			return "", fmt.Errorf("%w: configured file %s is absent", ErrNoIOCFile, name)
		}
		return path, nil
	}
	return FindIOC(p.root)
}

// parseIOC reads the flat key=value body of a CubeMX .ioc file. Lines
// without '=' and '#' comments are skipped.
func parseIOC(data []byte) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return values
}

// inspectIOC looks inside the .ioc for settings that conflict with a
// PlatformIO workflow and returns human-readable warnings.
func (p *Project) inspectIOC(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("cannot read %s: %v", filepath.Base(path), err)}
	}
	values := parseIOC(data)

	var warnings []string
	if tc := values["ProjectManager.TargetToolchain"]; tc != "" && !strings.Contains(tc, "Other Toolchain") {
		warnings = append(warnings,
			fmt.Sprintf("target toolchain is %q, PlatformIO expects 'Other Toolchains (GPDSC)'", tc))
	}
	if iocBoard := values["board"]; iocBoard != "" && iocBoard != "custom" {
		if cfgBoard := p.manager.Config().Project.Board; cfgBoard != "" && !strings.EqualFold(iocBoard, cfgBoard) {
			warnings = append(warnings,
				fmt.Sprintf("board %q in the .ioc differs from the configured board %q", iocBoard, cfgBoard))
		}
	}
	return warnings
}
