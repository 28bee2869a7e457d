package ramp

import "github.com/markusressel/spiro2go/internal/duty"

// Recorder observes the progress of a ramp leg.
type Recorder interface {
	// OnLegStart is called before the first decision step
	OnLegStart(from duty.DutyCycle, to duty.DutyCycle)
	// OnDuty is called for every duty change, right after it was written
	OnDuty(value duty.DutyCycle)
	// OnWait is called after every decision step with the number of countdown iterations
	OnWait(iterations int)
	// OnLegEnd is called after the last decision step
	OnLegEnd(final duty.DutyCycle)
}

// Recorders fans out all events to multiple recorders
type Recorders []Recorder

func (r Recorders) OnLegStart(from duty.DutyCycle, to duty.DutyCycle) {
	for _, recorder := range r {
		recorder.OnLegStart(from, to)
	}
}

func (r Recorders) OnDuty(value duty.DutyCycle) {
	for _, recorder := range r {
		recorder.OnDuty(value)
	}
}

func (r Recorders) OnWait(iterations int) {
	for _, recorder := range r {
		recorder.OnWait(iterations)
	}
}

func (r Recorders) OnLegEnd(final duty.DutyCycle) {
	for _, recorder := range r {
		recorder.OnLegEnd(final)
	}
}

// Leg is a complete record of a single ramp leg
type Leg struct {
	From   duty.DutyCycle   `json:"from"`
	To     duty.DutyCycle   `json:"to"`
	Duties []duty.DutyCycle `json:"duties"`
	Waits  []int            `json:"waits"`
}

// TotalWaitIterations returns the sum of all countdown iterations of this leg
func (l Leg) TotalWaitIterations() int {
	total := 0
	for _, w := range l.Waits {
		total += w
	}
	return total
}

// LegRecorder keeps a Leg for every ramp it observes
type LegRecorder struct {
	Legs []Leg
}

func (r *LegRecorder) OnLegStart(from duty.DutyCycle, to duty.DutyCycle) {
	r.Legs = append(r.Legs, Leg{From: from, To: to})
}

func (r *LegRecorder) current() *Leg {
	if len(r.Legs) <= 0 {
		r.Legs = append(r.Legs, Leg{})
	}
	return &r.Legs[len(r.Legs)-1]
}

func (r *LegRecorder) OnDuty(value duty.DutyCycle) {
	leg := r.current()
	leg.Duties = append(leg.Duties, value)
}

func (r *LegRecorder) OnWait(iterations int) {
	leg := r.current()
	leg.Waits = append(leg.Waits, iterations)
}

func (r *LegRecorder) OnLegEnd(final duty.DutyCycle) {}
