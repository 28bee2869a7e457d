package duty

const (
	MaxValue = 255
	MinValue = 0
)

// DutyCycle is the fraction of each PWM period the output is driven high,
// 0 = off, 255 = full on.
type DutyCycle uint8

// Scaler maps a full range 8-bit input to [PwmMin, 255], so the motor
// never receives a duty cycle too low to keep it spinning.
type Scaler struct {
	PwmMin DutyCycle
}

func NewScaler(pwmMin DutyCycle) Scaler {
	return Scaler{PwmMin: pwmMin}
}

// Scale linearly remaps 0..255 to PwmMin..255.
// The +127 biases the integer division towards the nearest value.
func (s Scaler) Scale(input uint8) DutyCycle {
	span := uint16(MaxValue - s.PwmMin)
	return DutyCycle((span*uint16(input)+127)/MaxValue) + s.PwmMin
}
