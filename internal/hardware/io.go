package hardware

// IO is the capability the controller needs from the board.
// All operations are total: failures are handled by the implementation.
type IO interface {
	// ReadInput triggers one sample of the knob and returns it
	ReadInput() uint8
	// SetDuty applies the duty cycle immediately
	SetDuty(value uint8)
	// ReadModeSwitch returns true for auto-ramp mode
	ReadModeSwitch() bool
}
