package cmd

import (
	"fmt"
	"strconv"

	"github.com/markusressel/spiro2go/cmd/global"
	"github.com/markusressel/spiro2go/internal/hwmon"
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect voltage inputs",
	Long:  `Detects all hwmon voltage inputs which can be used as knob and prints them as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		chips := hwmon.GetChips()
		if len(chips) <= 0 {
			ui.Warning("No hwmon chip with voltage inputs found")
			return
		}

		for _, chip := range chips {
			ui.Printfln("> %s (platform: %s)", chip.Name, chip.Platform)

			var rows [][]string
			for _, voltage := range chip.Voltages {
				rows = append(rows, []string{
					"", voltage.Name, voltage.Label, fmt.Sprintf("%.3f", voltage.Value),
				})
			}

			global.PrintTable(table.Table{
				Headers: []string{"Voltages", "Feature", "Label", "Value (V)"},
				Rows:    rows,
			})
			ui.Printfln("%d voltage input(s)", len(rows))
			ui.Printfln("")
		}
		ui.Debug("Found %s chip(s)", strconv.Itoa(len(chips)))
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
