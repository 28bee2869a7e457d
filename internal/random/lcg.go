package random

// A 16-bit linear congruential generator: x' = (x*a + b) mod 2^16.
// With m = 2^16 the period is maximal if a-1 is a multiple of 4 and b is odd,
// which holds for a = 5 and b = 0x3333.
const (
	Multiplier uint16 = 5
	Increment  uint16 = 0x3333
)

// Next folds entropy into state and advances it by one LCG step.
// It returns the new state and its high byte, which is the next target sample.
func Next(state uint16, entropy uint8) (newState uint16, targetSample uint8) {
	state += uint16(entropy)
	// x*5 as shift-and-add
	newState = (state << 2) + state + Increment
	return newState, uint8(newState >> 8)
}

// Generator carries the LCG state across ramp legs.
type Generator struct {
	state uint16
}

// NewGenerator creates a Generator seeded from a live sample,
// folded into the high byte of the initial state.
func NewGenerator(sample uint8) *Generator {
	g := &Generator{}
	g.Seed(sample)
	return g
}

func (g *Generator) Seed(sample uint8) {
	g.state = uint16(sample) << 8
}

// Perturb adds a live sample to the state, e.g. while in manual mode.
func (g *Generator) Perturb(sample uint8) {
	g.state += uint16(sample)
}

// Next advances the state and returns the next target sample.
func (g *Generator) Next() uint8 {
	var sample uint8
	g.state, sample = Next(g.state, 0)
	return sample
}

func (g *Generator) State() uint16 {
	return g.state
}
