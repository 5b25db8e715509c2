package cli

import (
	"github.com/spf13/cobra"
)

var patchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Patch platformio.ini for the CubeMX directory layout",
	Long: `Merge the configured patch fragment into platformio.ini so PlatformIO
builds from the Inc/ and Src/ directories CubeMX generates, and drop
the stock empty include/ directory.`,
	Args: cobra.NoArgs,
	RunE: runPatch,
}

func init() {
	rootCmd.AddCommand(patchCmd)
}

func runPatch(cmd *cobra.Command, _ []string) error {
	p, err := openProject(cmd)
	if err != nil {
		return err
	}
	if err := p.Patch(); err != nil {
		return err
	}
	cmd.Println("platformio.ini patched")
	return nil
}
