package ramp

import (
	"time"
)

const (
	DefaultDelayOffset     = 10
	DefaultCountdownBudget = 0x2000
	DefaultTickDuration    = 4 * time.Microsecond
)

// Ticker is executed once per countdown iteration of a Delay.
// It is the calibration point between the countdown and the wall clock.
type Ticker interface {
	// Tick is called for every successful countdown decrement
	Tick()
	// Flush is called once the countdown of a decision step has finished
	Flush()
}

// Delay is a variable length countdown wait, controlled by an input sample.
// Larger samples produce larger decrements, and therefore shorter waits.
type Delay struct {
	// Budget is the starting value of the countdown
	Budget int16
	// Offset is added to every sample, so a sample of 0 does not wait forever
	Offset int16
	Ticker Ticker
}

func NewDelay(budget int16, offset int16, ticker Ticker) *Delay {
	return &Delay{
		Budget: budget,
		Offset: offset,
		Ticker: ticker,
	}
}

// Wait counts Budget down in steps of (sample + Offset) until it goes negative
// and returns the number of countdown iterations.
func (d *Delay) Wait(sample uint8) (iterations int) {
	counter := d.Budget
	delta := int16(sample) + d.Offset
	if delta <= 0 {
		delta = 1
	}
	for {
		counter -= delta
		if counter < 0 {
			break
		}
		iterations++
		if d.Ticker != nil {
			d.Ticker.Tick()
		}
	}
	if d.Ticker != nil {
		d.Ticker.Flush()
	}
	return iterations
}

// SpinTicker busy-waits a calibrated number of loop iterations per tick.
type SpinTicker struct {
	Loops int
	sink  int
}

func NewSpinTicker(loops int) *SpinTicker {
	return &SpinTicker{Loops: loops}
}

func (s *SpinTicker) Tick() {
	for i := 0; i < s.Loops; i++ {
		s.sink += i
	}
}

func (s *SpinTicker) Flush() {}

// SleepTicker accumulates ticks and sleeps once per decision step.
type SleepTicker struct {
	TickDuration time.Duration
	pending      time.Duration
	sleep        func(time.Duration)
}

func NewSleepTicker(tickDuration time.Duration) *SleepTicker {
	return &SleepTicker{
		TickDuration: tickDuration,
		sleep:        time.Sleep,
	}
}

func (s *SleepTicker) Tick() {
	s.pending += s.TickDuration
}

func (s *SleepTicker) Flush() {
	if s.pending <= 0 {
		return
	}
	s.sleep(s.pending)
	s.pending = 0
}

// CountingTicker only counts ticks, used for simulations.
type CountingTicker struct {
	Ticks int
}

func (c *CountingTicker) Tick() {
	c.Ticks++
}

func (c *CountingTicker) Flush() {}
