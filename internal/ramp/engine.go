package ramp

import (
	"github.com/markusressel/spiro2go/internal/duty"
)

// Steps is the number of decision steps of every ramp leg, regardless of its distance.
const Steps int16 = 255

// RateSource returns the sample controlling the wait after each decision step.
type RateSource func() uint8

// DutyWriter receives every intermediate duty value of a ramp leg.
type DutyWriter interface {
	SetDuty(value uint8)
}

// Engine steps the output duty from one value to another, spreading the
// increments evenly over Steps decision steps (Bresenham style).
type Engine struct {
	output   DutyWriter
	delay    *Delay
	recorder Recorder
}

func NewEngine(output DutyWriter, delay *Delay, recorders ...Recorder) *Engine {
	e := &Engine{
		output: output,
		delay:  delay,
	}
	if len(recorders) == 1 {
		e.recorder = recorders[0]
	} else if len(recorders) > 1 {
		e.recorder = Recorders(recorders)
	}
	return e
}

// Ramp moves the output from current to target, one unit at a time,
// and returns the final duty, which is always equal to target.
// After every decision step a fresh sample of rate determines how long to wait.
func (e *Engine) Ramp(current duty.DutyCycle, target duty.DutyCycle, rate RateSource) duty.DutyCycle {
	if e.recorder != nil {
		e.recorder.OnLegStart(current, target)
	}

	delta := int16(target) - int16(current)
	var direction int16 = 1
	if delta < 0 {
		direction = -1
		delta = -delta
	}
	magnitude := delta << 1

	value := int16(current)
	errorAcc := -Steps
	for remaining := Steps; remaining > 0; remaining-- {
		errorAcc += magnitude
		if errorAcc >= 0 {
			errorAcc -= Steps << 1
			value += direction
			e.output.SetDuty(uint8(value))
			if e.recorder != nil {
				e.recorder.OnDuty(duty.DutyCycle(value))
			}
		}

		iterations := e.delay.Wait(rate())
		if e.recorder != nil {
			e.recorder.OnWait(iterations)
		}
	}

	result := duty.DutyCycle(value)
	if e.recorder != nil {
		e.recorder.OnLegEnd(result)
	}
	return result
}
