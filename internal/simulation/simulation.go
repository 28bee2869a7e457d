package simulation

import (
	"time"

	"github.com/markusressel/spiro2go/internal/controller"
	"github.com/markusressel/spiro2go/internal/duty"
	"github.com/markusressel/spiro2go/internal/hardware"
	"github.com/markusressel/spiro2go/internal/persistence"
	"github.com/markusressel/spiro2go/internal/ramp"
)

// Options of an offline auto-ramp run
type Options struct {
	// Seed is the first sample, taken before the warm-up
	Seed uint8
	// Input is the constant knob position during all legs
	Input  uint8
	PwmMin uint8
	Legs   int

	Budget int16
	Offset int16
}

// Run executes the given number of ramp legs against a simulated board,
// without waiting, and records them as a trace.
func Run(name string, options Options) persistence.Trace {
	sim := hardware.NewSimulated(hardware.SequenceInput(options.Seed, options.Input), true)
	recorder := &ramp.LegRecorder{}

	ctrl := controller.NewController(sim, controller.Options{
		PwmMin:     duty.DutyCycle(options.PwmMin),
		WarmupDuty: controller.DefaultWarmupDuty,
		Delay:      ramp.NewDelay(options.Budget, options.Offset, &ramp.CountingTicker{}),
		Recorders:  []ramp.Recorder{recorder},
	})

	ctrl.Start()
	for i := 0; i < options.Legs; i++ {
		ctrl.Step()
	}

	return persistence.Trace{
		Name:      name,
		CreatedAt: time.Now(),
		Seed:      options.Seed,
		PwmMin:    options.PwmMin,
		Input:     options.Input,
		Legs:      recorder.Legs,
	}
}

// Series returns the duty after every decision step of all legs
func Series(trace persistence.Trace) []float64 {
	steps := int(ramp.Steps)
	var result []float64
	for _, leg := range trace.Legs {
		delta := int(leg.To) - int(leg.From)
		direction := 1
		if delta < 0 {
			direction = -1
			delta = -delta
		}
		for k := 1; k <= len(leg.Waits); k++ {
			// moves of the ramp engine after k decision steps
			moved := (2*delta*k + steps) / (2 * steps)
			result = append(result, float64(int(leg.From)+direction*moved))
		}
	}
	return result
}

// Duration estimates the wall clock duration of the trace for the given tick duration
func Duration(trace persistence.Trace, tickDuration time.Duration) time.Duration {
	total := 0
	for _, leg := range trace.Legs {
		total += leg.TotalWaitIterations()
	}
	return time.Duration(total) * tickDuration
}

// Targets returns the target duty of every leg
func Targets(trace persistence.Trace) []duty.DutyCycle {
	result := make([]duty.DutyCycle, 0, len(trace.Legs))
	for _, leg := range trace.Legs {
		result = append(result, leg.To)
	}
	return result
}
