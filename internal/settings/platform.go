package settings

import (
	"os"
	"path/filepath"
	"runtime"
)

// Platform is the closed set of operating system families the tool
// distinguishes between. Anything outside the set is PlatformUnknown and
// only gets empty fallbacks.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformWindows
	PlatformMacOS
	PlatformLinux
)

// String returns a human-readable platform name.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformMacOS:
		return "macos"
	case PlatformLinux:
		return "linux"
	default:
		return "unknown"
	}
}

// CurrentPlatform maps runtime.GOOS onto the Platform set. The result is
// fixed for the lifetime of the process.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMacOS
	case "linux":
		return PlatformLinux
	default:
		return PlatformUnknown
	}
}

// cubemxExecName returns the platform-specific CubeMX executable name.
// Only the Windows name carries an extension.
func (p Platform) cubemxExecName() string {
	if p == PlatformWindows {
		return "STM32CubeMX.exe"
	}
	return "STM32CubeMX"
}

// javaExecName returns the platform-specific java executable name.
func (p Platform) javaExecName() string {
	if p == PlatformWindows {
		return "java.exe"
	}
	return "java"
}

// conventionalInstallPaths lists the fixed per-OS locations CubeMX is
// typically installed to. The lists are probed last, after environment
// variables and PATH.
func conventionalInstallPaths(p Platform) []string {
	switch p {
	case PlatformWindows:
		paths := []string{
			"C:/Program Files/STMicroelectronics/STM32Cube/STM32CubeMX/STM32CubeMX.exe",
			"C:/Program Files (x86)/STMicroelectronics/STM32Cube/STM32CubeMX/STM32CubeMX.exe",
			"C:/Program Files/STMicroelectronics/STM32CubeMX/STM32CubeMX.exe",
		}
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			paths = append(paths, filepath.Join(localAppData, "Programs", "STM32CubeMX", "STM32CubeMX.exe"))
		}
		return paths
	case PlatformMacOS:
		return []string{
			"/Applications/STMicroelectronics/STM32CubeMX.app/Contents/MacOS/STM32CubeMX",
		}
	case PlatformLinux:
		var paths []string
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "STM32CubeMX", "STM32CubeMX"))
		}
		return append(paths, "/usr/local/bin/STM32CubeMX", "/usr/bin/STM32CubeMX")
	default:
		return nil
	}
}

// fallbackCubeMX is the hardcoded per-platform CubeMX path used when
// automatic detection finds nothing. Unknown platforms get an empty string,
// which downstream callers must handle.
func fallbackCubeMX(p Platform) string {
	switch p {
	case PlatformMacOS:
		return "/Applications/STMicroelectronics/STM32CubeMX.app/Contents/MacOs/STM32CubeMX"
	case PlatformLinux:
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "STM32CubeMX", "STM32CubeMX")
	case PlatformWindows:
		return "C:/Program Files/STMicroelectronics/STM32Cube/STM32CubeMX/STM32CubeMX.exe"
	default:
		return ""
	}
}

// fallbackJava is the hardcoded Java command used when no bundled JRE was
// found. Windows keeps the historical CubeMX install-dir JRE path; every
// other platform gets the explicit JavaUnavailable sentinel.
func fallbackJava(p Platform) string {
	if p == PlatformWindows {
		return "C:/Program Files/STMicroelectronics/STM32Cube/STM32CubeMX/jre/bin/java.exe"
	}
	return JavaUnavailable
}
