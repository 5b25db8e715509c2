// Package settings provides the default configuration of the stm32pio
// tool: automatic discovery of the external programs it drives (CubeMX,
// its bundled JRE, PlatformIO), the compiled defaults seeding each
// project's stm32pio.ini, and the constants shared by every other module.
//
// All discovery is best-effort: a tool that cannot be found degrades to a
// fallback literal or an explicit sentinel, never to an error. Whoever
// later invokes an unresolved path fails with its own context.
package settings

// AppConfig is the "app" section: commands/paths of the external programs
// the tool drives. Each value is either a resolvable path, a bare command
// expected on PATH, or an empty/sentinel value meaning "not found".
type AppConfig struct {
	// PlatformIOCmd is how PlatformIO is started from the command line,
	// either the bare command (when it is on PATH) or a full path.
	PlatformIOCmd string `ini:"platformio_cmd" yaml:"platformio_cmd"`

	// CubeMXCmd is the full path to STM32CubeMX. CubeMX does not register
	// itself in PATH, so this is usually an absolute install location.
	CubeMXCmd string `ini:"cubemx_cmd" yaml:"cubemx_cmd"`

	// JavaCmd starts the Java runtime CubeMX is written on. CubeMX 6.3.0+
	// bundles a JRE alongside the executable; older versions need a
	// user-installed one. JavaUnavailable (matched by IsNone) means CubeMX
	// is invoked directly.
	JavaCmd string `ini:"java_cmd" yaml:"java_cmd"`
}

// ProjectConfig is the "project" section: parameters of one concrete
// stm32pio project.
type ProjectConfig struct {
	// CubeMXScriptContent is the command script CubeMX is fed to generate
	// code headlessly (per the UM1718 user manual). The ${...} placeholders
	// are stored literally here and substituted by the project layer.
	CubeMXScriptContent string `ini:"cubemx_script_content"`

	// PlatformIOIniPatchContent is an INI fragment merged into
	// platformio.ini so PlatformIO understands the CubeMX directory layout.
	// It must itself be a valid platformio.ini config.
	PlatformIOIniPatchContent string `ini:"platformio_ini_patch_content"`

	// Board is a PlatformIO board identifier (e.g. "nucleo_f031k6").
	Board string `ini:"board"`

	// IOCFile is the CubeMX .ioc project file, filled in automatically on
	// project initialization.
	IOCFile string `ini:"ioc_file"`

	// CleanupIgnore lists entries the clean operation must keep.
	CleanupIgnore string `ini:"cleanup_ignore"`

	// CleanupUseGit makes the clean operation delegate to git clean.
	CleanupUseGit bool `ini:"cleanup_use_git"`

	// InspectIOC enables the .ioc sanity inspection during init.
	InspectIOC bool `ini:"inspect_ioc"`
}

// Config is the two-section configuration seeding stm32pio.ini. It is a
// plain value type: copies are deep and independent.
type Config struct {
	App     AppConfig     `ini:"app"`
	Project ProjectConfig `ini:"project"`
}
