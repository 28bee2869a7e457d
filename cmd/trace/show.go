package trace

import (
	"github.com/markusressel/spiro2go/cmd/simulate"
	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := openPersistence()

		trace, err := p.LoadTrace(args[0])
		if err != nil {
			return err
		}

		simulate.PrintTrace(trace, configuration.CurrentConfig.Ramp)
		return nil
	},
}

func init() {
	Command.AddCommand(showCmd)
}
