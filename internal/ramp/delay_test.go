package ramp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelay_Wait_Iterations(t *testing.T) {
	// GIVEN
	ticker := &CountingTicker{}
	delay := NewDelay(DefaultCountdownBudget, DefaultDelayOffset, ticker)

	// WHEN
	slowest := delay.Wait(0)
	fastest := delay.Wait(255)

	// THEN
	assert.Equal(t, 0x2000/10, slowest)
	assert.Equal(t, 0x2000/265, fastest)
	assert.Equal(t, slowest+fastest, ticker.Ticks)
}

func TestDelay_Wait_Monotonic(t *testing.T) {
	// GIVEN
	delay := NewDelay(6000, DefaultDelayOffset, nil)

	last := delay.Wait(0)
	for sample := 1; sample <= 255; sample++ {
		// WHEN
		result := delay.Wait(uint8(sample))

		// THEN
		assert.LessOrEqual(t, result, last)
		last = result
	}
}

func TestDelay_Wait_ZeroBudget(t *testing.T) {
	// GIVEN
	delay := NewDelay(0, DefaultDelayOffset, nil)

	// WHEN
	result := delay.Wait(0)

	// THEN
	assert.Equal(t, 0, result)
}

func TestDelay_Wait_ExactMultiple(t *testing.T) {
	// GIVEN
	delay := NewDelay(100, 0, nil)

	// WHEN
	result := delay.Wait(10)

	// THEN
	// 100 -> 90 -> ... -> 0 is still non-negative, -10 ends the countdown
	assert.Equal(t, 10, result)
}

func TestSleepTicker_FlushSleepsAccumulated(t *testing.T) {
	// GIVEN
	var slept []time.Duration
	ticker := NewSleepTicker(5 * time.Microsecond)
	ticker.sleep = func(d time.Duration) {
		slept = append(slept, d)
	}
	delay := NewDelay(100, 0, ticker)

	// WHEN
	delay.Wait(10)
	delay.Wait(200)

	// THEN
	// the second wait has no iterations and must not sleep
	assert.Equal(t, []time.Duration{50 * time.Microsecond}, slept)
}

func TestSpinTicker_Tick(t *testing.T) {
	// GIVEN
	ticker := NewSpinTicker(10)

	// WHEN
	ticker.Tick()
	ticker.Tick()

	// THEN
	assert.Equal(t, 90, ticker.sink)
}
