package trace

import (
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := openPersistence()

		if err := p.DeleteTrace(args[0]); err != nil {
			return err
		}
		ui.Success("Deleted trace '%s'", args[0])
		return nil
	},
}

func init() {
	Command.AddCommand(deleteCmd)
}
