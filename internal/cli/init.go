package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/stm32pio/stm32pio/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the stm32pio configuration for an existing CubeMX project",
	Long: `Create stm32pio.ini next to the .ioc file so later commands know the
board and the tool paths. With a terminal attached and no --board flag
the board is picked interactively from the PlatformIO catalog.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("board", "b", "", "PlatformIO board ID (e.g. nucleo_f031k6)")
}

func runInit(cmd *cobra.Command, _ []string) error {
	p, err := openProject(cmd)
	if err != nil {
		return err
	}

	board := getStringFlag(cmd, "board")
	if board == "" {
		board, err = askBoard(cmd)
		if err != nil {
			return err
		}
	}

	if err := p.Init(board); err != nil {
		return err
	}
	if board == "" {
		deps.Logger.Warn("no board set, pio-related commands will fail until one is configured")
	}
	cmd.Printf("Project initialized: %s\n", p.Manager().Path())
	return nil
}

// askBoard offers interactive board selection when a terminal is
// attached. A headless run silently proceeds without a board; catalog
// failures degrade to a warning.
func askBoard(cmd *cobra.Command) (string, error) {
	if deps.Headless.IsHeadless() {
		return "", nil
	}

	boards, err := deps.Boards.Boards(cmd.Context(), "")
	if err != nil {
		deps.Logger.Warn("cannot fetch the PlatformIO board catalog", "error", err)
		return "", nil
	}

	board, err := ui.SelectBoard(deps.Theme, deps.Headless, boards)
	if err != nil {
		if errors.Is(err, ui.ErrHeadlessSelection) {
			return "", nil
		}
		return "", err
	}
	return board, nil
}
