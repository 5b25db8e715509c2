package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stm32pio/stm32pio/internal/project"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how far the project has progressed",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	p, err := openProject(cmd)
	if err != nil {
		return err
	}
	cmd.Print(renderStatus(p.State(), deps.Theme.NoColor || deps.Headless.IsHeadless()))
	return nil
}

// renderStatus draws the lifecycle ladder with the reached stages marked.
func renderStatus(current project.Stage, plain bool) string {
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#3CB4E6"))
	pendingStyle := lipgloss.NewStyle().Faint(true)

	stages := []project.Stage{
		project.StageEmpty,
		project.StageInitialized,
		project.StageGenerated,
		project.StagePIOInitialized,
		project.StagePatched,
	}

	var b strings.Builder
	for _, stage := range stages {
		mark, style := "[ ]", pendingStyle
		if stage <= current {
			mark, style = "[*]", doneStyle
		}
		line := mark + " " + stage.String()
		if plain {
			b.WriteString(line)
		} else {
			b.WriteString(style.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
