package defs

// Common file names used across the project.
const (
	// ConfigINI is the per-project stm32pio configuration file.
	ConfigINI = "stm32pio.ini"

	// PlatformIOINI is the PlatformIO project configuration file.
	PlatformIOINI = "platformio.ini"

	// PlatformIOINILockfile is the per-test-case fixture appended to the
	// platformio.ini patch template on CI runs.
	PlatformIOINILockfile = "platformio.ini.lockfile"

	// IOCExt is the file extension of CubeMX project files.
	IOCExt = ".ioc"
)

// User-level settings under the home directory.
const (
	// UserSettingsDir is the directory under $HOME that holds the optional
	// user-level settings override file.
	UserSettingsDir = ".stm32pio"

	// UserSettingsYAML is the user-level settings override file name.
	UserSettingsYAML = "settings.yaml"
)
