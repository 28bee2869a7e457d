package trace

import (
	"fmt"

	"github.com/markusressel/spiro2go/cmd/global"
	"github.com/markusressel/spiro2go/internal/simulation"
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored traces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := openPersistence()

		names, err := p.ListTraces()
		if err != nil {
			return err
		}
		if len(names) <= 0 {
			ui.Info("No traces stored yet, use 'spiro2go simulate --save <name>' to create one")
			return nil
		}

		var rows [][]string
		for _, name := range names {
			trace, err := p.LoadTrace(name)
			if err != nil {
				ui.Warning("Unable to load trace %s: %v", name, err)
				continue
			}
			rows = append(rows, []string{
				trace.Name,
				trace.CreatedAt.Format("2006-01-02 15:04:05"),
				fmt.Sprintf("%d", trace.Seed),
				fmt.Sprintf("%d", trace.Input),
				fmt.Sprintf("%d", trace.PwmMin),
				fmt.Sprintf("%d", len(trace.Legs)),
				fmt.Sprintf("%v", simulation.Targets(trace)),
			})
		}

		global.PrintTable(table.Table{
			Headers: []string{"Name", "Created", "Seed", "Input", "PwmMin", "Legs", "Targets"},
			Rows:    rows,
		})
		return nil
	},
}

func init() {
	Command.AddCommand(listCmd)
}
