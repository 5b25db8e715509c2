package settings

import (
	"os"
	"os/exec"
	"path/filepath"
)

// cubemxEnvVars are checked in priority order; the first one naming an
// existing path wins and stops all further probing.
var cubemxEnvVars = []string{
	"STM32CUBEMX_HOME",
	"STM32_CUBEMX_HOME",
	"STM32_CUBEMX",
	"STM32CUBEMX",
	"STM32_CUBEMX_PATH",
	"STM32CUBEMX_PATH",
}

var lookPath = exec.LookPath

// locateCubeMX tries to find the STM32CubeMX executable automatically.
// Strategies, first match wins: environment variables, PATH lookup,
// conventional per-OS install locations. Returns the path, or "" when
// nothing was found. Filesystem errors count as "not found"; the function
// never fails.
func locateCubeMX(p Platform) string {
	if path := cubemxFromEnv(); path != "" {
		return path
	}
	if path := cubemxFromPATH(p); path != "" {
		return path
	}
	return cubemxFromConventionalDirs(p)
}

// cubemxFromEnv resolves CubeMX from the known environment variables.
// A value naming a directory is probed for the conventional executable
// names inside it (bare, .exe, macOS app-bundle inner binary); a value
// naming an existing file is returned as-is.
func cubemxFromEnv() string {
	for _, name := range cubemxEnvVars {
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		info, err := os.Stat(val)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			return val
		}
		for _, candidate := range []string{
			filepath.Join(val, "STM32CubeMX"),
			filepath.Join(val, "STM32CubeMX.exe"),
			filepath.Join(val, "STM32CubeMX.app", "Contents", "MacOS", "STM32CubeMX"),
		} {
			if pathExists(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// cubemxFromPATH searches the executable search path, first for the
// platform-specific name, then for the generic one.
func cubemxFromPATH(p Platform) string {
	if path, err := lookPath(p.cubemxExecName()); err == nil {
		return path
	}
	if path, err := lookPath("STM32CubeMX"); err == nil {
		return path
	}
	return ""
}

func cubemxFromConventionalDirs(p Platform) string {
	for _, candidate := range conventionalInstallPaths(p) {
		if candidate != "" && pathExists(candidate) {
			return candidate
		}
	}
	return ""
}

// locateBundledJava looks for the JRE shipped inside the CubeMX
// installation (bundled starting with CubeMX 6.3.0). Candidates must exist
// and carry the execute bit. Returns "" when cubemxPath is empty (without
// touching the filesystem) or when nothing matched.
func locateBundledJava(cubemxPath string, p Platform) string {
	if cubemxPath == "" {
		return ""
	}
	installDir := filepath.Dir(cubemxPath)
	javaName := p.javaExecName()
	candidates := []string{
		filepath.Join(installDir, "jre", "bin", javaName),
		// Some installers place the JRE one level up.
		filepath.Join(filepath.Dir(installDir), "jre", "bin", javaName),
		// macOS app-bundle layout.
		filepath.Join(installDir, "jre", "bin", "java"),
	}
	for _, candidate := range candidates {
		if isExecutable(candidate) {
			return candidate
		}
	}
	return ""
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
