package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stm32pio/stm32pio/internal/logging"
	"github.com/stm32pio/stm32pio/internal/project"
	"github.com/stm32pio/stm32pio/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "stm32pio",
	Short: "Automation bridging STM32CubeMX and PlatformIO",
	Long: `stm32pio automates the creation and maintenance of STM32 projects that
pair the STM32CubeMX code generator with the PlatformIO build system.

Starting from a CubeMX .ioc file it can generate the HAL code, create a
PlatformIO project for the matching board and patch platformio.ini so
both toolchains agree on the directory layout.`,
	Version: version.GetVersion(),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if deps != nil {
			deps.Logger = logging.Setup(verbose)
		}
	},
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("stm32pio %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug-level log messages")
	rootCmd.PersistentFlags().StringP("directory", "d", ".", "Path to the project directory")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// openProject opens the project named by the --directory flag.
func openProject(cmd *cobra.Command) (*project.Project, error) {
	dir := getStringFlag(cmd, "directory")
	if dir == "" {
		dir = "."
	}
	p, err := project.NewProject(dir, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("open project %s: %w", dir, err)
	}
	return p, nil
}
