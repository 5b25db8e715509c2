package cli

import (
	"github.com/spf13/cobra"
)

var boardsCmd = &cobra.Command{
	Use:   "boards [query]",
	Short: "List PlatformIO boards, optionally filtered",
	Long: `Query the PlatformIO board catalog. An optional argument filters by a
case-insensitive substring of the board ID or name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoards,
}

func init() {
	rootCmd.AddCommand(boardsCmd)
}

func runBoards(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	boards, err := deps.Boards.Boards(cmd.Context(), query)
	if err != nil {
		return err
	}
	for _, board := range boards {
		if board.Name != "" {
			cmd.Printf("%-24s %s\n", board.ID, board.Name)
		} else {
			cmd.Println(board.ID)
		}
	}
	return nil
}
