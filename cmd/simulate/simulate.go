package simulate

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/spiro2go/cmd/global"
	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/persistence"
	"github.com/markusressel/spiro2go/internal/simulation"
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var (
	seed     uint8
	input    uint8
	pwmMin   int
	legs     int
	saveName string
)

var Command = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate auto-ramp mode and plot the resulting duty cycle",
	Long: `Runs the auto-ramp mode against a simulated board with a constant knob position,
without waiting between steps, and plots the duty cycle over all decision steps.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configuration.ReadConfigFileIfPresent()
		if len(configPath) > 0 {
			ui.Info("Using configuration file at: %s", configPath)
		}
		configuration.LoadConfig()
		config := configuration.CurrentConfig

		if !cmd.Flags().Changed("pwm-min") {
			pwmMin = int(config.Controller.PwmMin)
		}
		if pwmMin < 0 || pwmMin > 255 {
			return fmt.Errorf("pwm-min must be in range [0..255], was %d", pwmMin)
		}
		if legs <= 0 {
			return fmt.Errorf("legs must be positive, was %d", legs)
		}
		if err := configuration.ValidateRamp(config.Ramp); err != nil {
			return err
		}

		trace := simulation.Run(saveName, simulation.Options{
			Seed:   seed,
			Input:  input,
			PwmMin: uint8(pwmMin),
			Legs:   legs,
			Budget: int16(config.Ramp.CountdownBudget),
			Offset: int16(config.Ramp.DelayOffset),
		})

		PrintTrace(trace, config.Ramp)

		if len(saveName) > 0 {
			p := persistence.NewPersistence(config.DbPath)
			if err := p.Init(); err != nil {
				return err
			}
			if err := p.SaveTrace(trace); err != nil {
				return err
			}
			ui.Success("Saved trace '%s' to %s", saveName, config.DbPath)
		}
		return nil
	},
}

// PrintTrace prints a summary table of all legs and a plot of the duty cycle
func PrintTrace(trace persistence.Trace, config configuration.RampConfig) {
	var rows [][]string
	for i, leg := range trace.Legs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", leg.From),
			fmt.Sprintf("%d", leg.To),
			fmt.Sprintf("%d", len(leg.Duties)),
			fmt.Sprintf("%d", leg.TotalWaitIterations()),
		})
	}
	global.PrintTable(table.Table{
		Headers: []string{"Leg", "From", "To", "Changes", "Ticks"},
		Rows:    rows,
	})

	if config.Ticker != configuration.TickerSpin {
		ui.Printfln("Estimated duration: %s", simulation.Duration(trace, config.TickDuration))
	}

	series := simulation.Series(trace)
	if len(series) <= 0 {
		return
	}
	caption := fmt.Sprintf("Duty / decision step (seed %d, input %d, pwmMin %d)", trace.Seed, trace.Input, trace.PwmMin)
	graph := asciigraph.Plot(series, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
	ui.Printfln("%s", graph)
}

func init() {
	Command.Flags().Uint8VarP(&seed, "seed", "s", 0x80, "First knob sample, used to seed the generator")
	Command.Flags().Uint8VarP(&input, "input", "i", 0x80, "Constant knob sample controlling the ramp speed")
	Command.Flags().IntVarP(&pwmMin, "pwm-min", "m", 0, "Lowest duty cycle (default from config)")
	Command.Flags().IntVarP(&legs, "legs", "l", 5, "Number of ramp legs to simulate")
	Command.Flags().StringVarP(&saveName, "save", "", "", "Store the simulation under the given name")
}
