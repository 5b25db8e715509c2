package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Run the whole pipeline: init, generate, pio init, patch",
	Long: `Take a directory holding a CubeMX .ioc file all the way to a buildable
PlatformIO project: write stm32pio.ini, generate the HAL code, create
the PlatformIO project and patch platformio.ini.`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("board", "b", "", "PlatformIO board ID (e.g. nucleo_f031k6)")
}

func runNew(cmd *cobra.Command, _ []string) error {
	p, err := openProject(cmd)
	if err != nil {
		return err
	}

	board := getStringFlag(cmd, "board")
	if board == "" && p.Config().Project.Board == "" {
		board, err = askBoard(cmd)
		if err != nil {
			return err
		}
	}

	steps := []struct {
		title string
		run   func(context.Context) error
	}{
		{"Initializing the project", func(context.Context) error { return p.Init(board) }},
		{"Generating code with STM32CubeMX", p.Generate},
		{"Initializing the PlatformIO project", p.PIOInit},
		{"Patching platformio.ini", func(context.Context) error { return p.Patch() }},
	}

	bar := deps.Progress.Start(steps[0].title, len(steps))
	defer bar.Done()
	for _, step := range steps {
		bar.SetTitle(step.title)
		if err := step.run(cmd.Context()); err != nil {
			return err
		}
		bar.Increment(1)
	}

	cmd.Printf("Project ready: %s\n", p.Root())
	return nil
}
