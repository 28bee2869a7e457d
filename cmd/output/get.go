package output

import (
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the duty cycle currently applied to an output",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := getOutput(outputId)
		if err != nil {
			return err
		}

		value, err := output.GetDuty()
		if err != nil {
			return err
		}

		ui.Printfln("%d", value)
		return nil
	},
}

func init() {
	Command.AddCommand(getCmd)
}
