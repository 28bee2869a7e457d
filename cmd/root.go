package cmd

import (
	"fmt"
	"os"

	"github.com/markusressel/spiro2go/cmd/config"
	"github.com/markusressel/spiro2go/cmd/global"
	"github.com/markusressel/spiro2go/cmd/input"
	"github.com/markusressel/spiro2go/cmd/output"
	"github.com/markusressel/spiro2go/cmd/simulate"
	"github.com/markusressel/spiro2go/cmd/trace"
	"github.com/markusressel/spiro2go/internal"
	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spiro2go",
	Short: "A daemon driving a motor with a knob or smooth random ramps.",
	Long: `spiro2go controls the PWM duty cycle of a motor.
In manual mode the duty follows a knob, in auto mode it ramps smoothly
between pseudo-random targets at a speed set by the knob.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()
		err := configuration.Validate(configPath)
		if err != nil {
			ui.Fatal("Config Validation Error: %v", err)
		}

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/spiro2go.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(input.Command)
	rootCmd.AddCommand(output.Command)
	rootCmd.AddCommand(simulate.Command)
	rootCmd.AddCommand(trace.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("spiro", pterm.NewStyle(pterm.FgLightMagenta)),
		pterm.NewLettersFromStringWithStyle("2", pterm.NewStyle(pterm.FgWhite)),
		pterm.NewLettersFromStringWithStyle("go", pterm.NewStyle(pterm.FgLightMagenta)),
	).Render()
	if err != nil {
		fmt.Println("spiro2go")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		setupUi()
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
