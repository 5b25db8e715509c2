package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the configured tools resolve to executables",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	p, err := openProject(cmd)
	if err != nil {
		return err
	}

	failed := false
	for _, check := range p.Validate() {
		if check.OK() {
			cmd.Printf("%-12s OK  (%s)\n", check.Name, check.Cmd)
			continue
		}
		failed = true
		cmd.Printf("%-12s FAIL: %v\n", check.Name, check.Err)
	}
	if failed {
		return errors.New("some tools did not resolve, fix stm32pio.ini or your PATH")
	}
	return nil
}
