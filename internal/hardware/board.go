package hardware

import (
	"sync"

	"github.com/markusressel/spiro2go/internal/inputs"
	"github.com/markusressel/spiro2go/internal/outputs"
	"github.com/markusressel/spiro2go/internal/switches"
	"github.com/markusressel/spiro2go/internal/ui"
)

// Board composes an input, an output and a mode switch.
// Errors of the backends are logged and the last good value is used instead.
type Board struct {
	input  inputs.Input
	output outputs.Output
	sw     switches.Switch

	mu         sync.Mutex
	lastSample uint8
	lastMode   bool
	lastDuty   uint8
	errors     int
}

func NewBoard(input inputs.Input, output outputs.Output, sw switches.Switch) *Board {
	return &Board{
		input:  input,
		output: output,
		sw:     sw,
	}
}

func (b *Board) ReadInput() uint8 {
	value, err := b.input.Read()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.errors++
		ui.Warning("Error reading input %s: %v", b.input.GetId(), err)
		return b.lastSample
	}
	b.lastSample = value
	return value
}

func (b *Board) SetDuty(value uint8) {
	err := b.output.SetDuty(value)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.errors++
		ui.Warning("Error setting duty of output %s: %v", b.output.GetId(), err)
		return
	}
	b.lastDuty = value
}

func (b *Board) ReadModeSwitch() bool {
	auto, err := b.sw.IsAuto()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.errors++
		ui.Warning("Error reading switch %s: %v", b.sw.GetId(), err)
		return b.lastMode
	}
	b.lastMode = auto
	return auto
}

// LastDuty returns the last duty that was applied successfully
func (b *Board) LastDuty() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastDuty
}

// Errors returns the number of failed backend operations
func (b *Board) Errors() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errors
}
