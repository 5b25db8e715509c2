package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/stm32pio/stm32pio/internal/platformio"
)

var (
	// ErrHeadlessSelection is returned when an interactive selection is
	// requested without a terminal.
	ErrHeadlessSelection = errors.New("interactive selection needs a terminal, pass --board instead")

	// ErrSelectionCancelled is returned when the user aborts a prompt.
	ErrSelectionCancelled = errors.New("selection cancelled")

	// ErrNoBoards is returned when the board catalog is empty.
	ErrNoBoards = errors.New("no boards available to choose from")
)

// SelectBoard asks the user to pick a PlatformIO board ID from the
// catalog.
func SelectBoard(theme *Theme, hm *HeadlessManager, boards []platformio.Board) (string, error) {
	if hm.IsHeadless() {
		return "", ErrHeadlessSelection
	}
	if len(boards) == 0 {
		return "", ErrNoBoards
	}

	opts := make([]huh.Option[string], len(boards))
	for i, b := range boards {
		label := b.ID
		if b.Name != "" {
			label = fmt.Sprintf("%s  %s", b.ID, b.Name)
		}
		opts[i] = huh.NewOption(label, b.ID)
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("PlatformIO board").
			Description("Board the generated project will target.").
			Options(opts...).
			Value(&selected),
	)).WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrSelectionCancelled
		}
		return "", fmt.Errorf("board selection: %w", err)
	}
	return selected, nil
}
