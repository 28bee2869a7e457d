package output

import (
	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <duty>",
	Short: "Set the duty cycle of an output ([0..255] or a percentage like 50%)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := configuration.ParseDutyValue(args[0])
		if err != nil {
			return err
		}

		output, err := getOutput(outputId)
		if err != nil {
			return err
		}

		if err = output.SetDuty(uint8(value)); err != nil {
			return err
		}

		ui.Success("Set duty of %s to %d", output.GetId(), value)
		return nil
	},
}

func init() {
	Command.AddCommand(setCmd)
}
