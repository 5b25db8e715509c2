package cli

import (
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run CubeMX code generation for the project",
	Long: `Run STM32CubeMX headlessly against the project's .ioc file. CubeMX
reports success only in its text output, so the output markers decide
the outcome rather than the exit code.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	p, err := openProject(cmd)
	if err != nil {
		return err
	}

	spinner := deps.Progress.Spinner("Generating code with STM32CubeMX...")
	err = p.Generate(cmd.Context())
	spinner.Stop()
	if err != nil {
		return err
	}
	cmd.Println("CubeMX code generated")
	return nil
}
