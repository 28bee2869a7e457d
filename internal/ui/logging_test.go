package ui

import (
	"os"

	"github.com/pterm/pterm"
)

func ExamplePrintfln() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	Printfln("Duty: %d", 128)
	// Output:
	// Duty: 128
}

func ExampleDebug() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()
	SetDebugEnabled(true)

	Debug("Ramp leg %d finished", 5)
	// Output:
	// DEBUG: Ramp leg 5 finished
}

func ExampleInfo() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	Info("Seeding generator with sample: %d", 42)
	// Output:
	// INFO: Seeding generator with sample: 42
}

func ExampleWarning() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	Warning("Unable to read input %s", "knob")
	// Output:
	// WARNING: Unable to read input knob
}

func ExampleError() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	Error("Unable to write duty: %v", os.ErrClosed)
	// Output:
	// ERROR: Unable to write duty: file already closed
}
