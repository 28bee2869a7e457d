package output

import (
	"fmt"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/outputs"
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/spf13/cobra"
)

var outputId string

var Command = &cobra.Command{
	Use:              "output",
	Short:            "Output related commands",
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&outputId,
		"id", "i",
		"",
		"Output ID as specified in the config",
	)
	_ = Command.MarkPersistentFlagRequired("id")
}

func getOutput(id string) (outputs.Output, error) {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	err := configuration.Validate(configPath)
	if err != nil {
		ui.Fatal("%v", err)
	}

	var availableIds []string
	for _, config := range configuration.CurrentConfig.Outputs {
		availableIds = append(availableIds, config.ID)
		if config.ID == id {
			return outputs.NewOutput(config)
		}
	}

	return nil, fmt.Errorf("no output with id found: %s, options: %s", id, availableIds)
}
