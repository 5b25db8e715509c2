package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated files, keeping the .ioc",
	Long: `Remove everything stm32pio and the tools created, leaving only the
.ioc file and the cleanup_ignore entries from stm32pio.ini. With
cleanup_use_git enabled the removal is delegated to git clean.

Destructive. Without a terminal the --yes flag is required.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runClean(cmd *cobra.Command, _ []string) error {
	p, err := openProject(cmd)
	if err != nil {
		return err
	}

	if !getBoolFlag(cmd, "yes") {
		if deps.Headless.IsHeadless() {
			return errors.New("refusing to clean without confirmation, pass --yes")
		}
		confirmed, err := confirmClean(p.Root())
		if err != nil {
			return err
		}
		if !confirmed {
			cmd.Println("Aborted")
			return nil
		}
	}

	if err := p.Clean(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("Project cleaned")
	return nil
}

func confirmClean(root string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Remove generated files in %s?", root)).
			Affirmative("Clean").
			Negative("Abort").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}
