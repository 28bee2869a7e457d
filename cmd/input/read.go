package input

import (
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Sample the input once and print the 8-bit value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := getInput(inputId)
		if err != nil {
			return err
		}

		value, err := input.Read()
		if err != nil {
			return err
		}

		ui.Printfln("%d", value)
		return nil
	},
}

func init() {
	Command.AddCommand(readCmd)
}
