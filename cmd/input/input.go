package input

import (
	"fmt"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/inputs"
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/spf13/cobra"
)

var inputId string

var Command = &cobra.Command{
	Use:              "input",
	Short:            "Input related commands",
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&inputId,
		"id", "i",
		"",
		"Input ID as specified in the config",
	)
	_ = Command.MarkPersistentFlagRequired("id")
}

func getInput(id string) (inputs.Input, error) {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	err := configuration.Validate(configPath)
	if err != nil {
		ui.Fatal("%v", err)
	}

	var availableIds []string
	for _, config := range configuration.CurrentConfig.Inputs {
		availableIds = append(availableIds, config.ID)
		if config.ID == id {
			return inputs.NewInput(config)
		}
	}

	return nil, fmt.Errorf("no input with id found: %s, options: %s", id, availableIds)
}
