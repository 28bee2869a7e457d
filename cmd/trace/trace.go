package trace

import (
	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/persistence"
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "trace",
	Short: "Stored simulation traces",
}

func openPersistence() persistence.Persistence {
	configPath := configuration.ReadConfigFileIfPresent()
	if len(configPath) > 0 {
		ui.Debug("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()

	p := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
	if err := p.Init(); err != nil {
		ui.Fatal("Unable to initialize trace database: %v", err)
	}
	return p
}
