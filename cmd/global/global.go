package global

import (
	"bytes"

	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)

func TableConfig() *table.Config {
	return &table.Config{
		ShowIndex:       false,
		Color:           !NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}
}

// PrintTable renders the given table, does nothing if it has no rows
func PrintTable(tab table.Table) {
	if tab.Rows == nil {
		return
	}
	var buf bytes.Buffer
	if err := tab.WriteTable(&buf, TableConfig()); err != nil {
		ui.Fatal("Error printing table: %v", err)
	}
	ui.Printfln("%s", buf.String())
}
