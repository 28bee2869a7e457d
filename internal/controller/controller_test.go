package controller

import (
	"context"
	"testing"
	"time"

	"github.com/markusressel/spiro2go/internal/duty"
	"github.com/markusressel/spiro2go/internal/hardware"
	"github.com/markusressel/spiro2go/internal/random"
	"github.com/markusressel/spiro2go/internal/ramp"
	"github.com/stretchr/testify/assert"
)

func createController(sim *hardware.Simulated, pwmMin duty.DutyCycle, recorders ...ramp.Recorder) (*Controller, *[]time.Duration) {
	c := NewController(sim, Options{
		PwmMin:         pwmMin,
		WarmupDuty:     DefaultWarmupDuty,
		WarmupDuration: DefaultWarmupDuration,
		Delay:          ramp.NewDelay(0, ramp.DefaultDelayOffset, &ramp.CountingTicker{}),
		Recorders:      recorders,
	})
	var sleeps []time.Duration
	c.sleep = func(d time.Duration) {
		sleeps = append(sleeps, d)
	}
	return c, &sleeps
}

// countingIO notifies onRead after every input sample, outside of the simulated board's lock
type countingIO struct {
	*hardware.Simulated
	reads  int
	onRead func(reads int)
}

func (c *countingIO) ReadInput() uint8 {
	value := c.Simulated.ReadInput()
	c.reads++
	if c.onRead != nil {
		c.onRead(c.reads)
	}
	return value
}

// legEndRecorder captures the context state at the moment a leg completes
type legEndRecorder struct {
	ramp.LegRecorder
	ctx    context.Context
	errors []error
}

func (r *legEndRecorder) OnLegEnd(final duty.DutyCycle) {
	r.LegRecorder.OnLegEnd(final)
	r.errors = append(r.errors, r.ctx.Err())
}

func TestController_Start(t *testing.T) {
	// GIVEN
	sim := hardware.NewSimulated(hardware.ConstantInput(0x12), false)
	c, sleeps := createController(sim, 0)

	// WHEN
	c.Start()

	// THEN
	assert.Equal(t, []uint8{255}, sim.Writes())
	assert.Equal(t, uint16(0x1200), c.Generator().State())
	assert.Equal(t, duty.DutyCycle(255), c.Current())
	assert.Equal(t, []time.Duration{250 * time.Millisecond}, *sleeps)
	assert.Equal(t, 1, sim.Reads())
	assert.Equal(t, 0, sim.Polls())
}

func TestController_Step_Manual(t *testing.T) {
	// GIVEN
	sim := hardware.NewSimulated(hardware.ConstantInput(128), false)
	c, _ := createController(sim, 62)
	c.Start()

	// WHEN
	mode := c.Step()

	// THEN
	assert.Equal(t, ModeManual, mode)
	assert.Equal(t, []uint8{255, 159}, sim.Writes())
	assert.Equal(t, duty.DutyCycle(159), c.Current())
	// seed 0x8000 perturbed by the manual sample
	assert.Equal(t, uint16(0x8080), c.Generator().State())
	assert.Equal(t, uint64(1), c.Statistics().Snapshot().ManualIterations)
}

func TestController_Step_ManualPerturbsEveryIteration(t *testing.T) {
	// GIVEN
	sim := hardware.NewSimulated(hardware.SequenceInput(0, 10, 20, 30), false)
	c, _ := createController(sim, 0)
	c.Start()

	// WHEN
	c.Step()
	c.Step()
	c.Step()

	// THEN
	assert.Equal(t, uint16(60), c.Generator().State())
	assert.Equal(t, []uint8{255, 10, 20, 30}, sim.Writes())
}

func TestController_Step_Auto(t *testing.T) {
	// GIVEN
	sim := hardware.NewSimulated(hardware.ConstantInput(0x40), true)
	recorder := &ramp.LegRecorder{}
	c, _ := createController(sim, 62, recorder)
	c.Start()

	_, targetSample := random.Next(0x4000, 0)
	expectedTarget := duty.NewScaler(62).Scale(targetSample)

	// WHEN
	mode := c.Step()

	// THEN
	assert.Equal(t, ModeAuto, mode)
	assert.Equal(t, expectedTarget, c.Current())

	writes := sim.Writes()
	assert.Len(t, writes, 1+int(255-expectedTarget))
	assert.Equal(t, uint8(expectedTarget), writes[len(writes)-1])

	assert.Len(t, recorder.Legs, 1)
	assert.Equal(t, duty.DutyCycle(255), recorder.Legs[0].From)
	assert.Equal(t, expectedTarget, recorder.Legs[0].To)
	assert.Len(t, recorder.Legs[0].Waits, int(ramp.Steps))

	// one sample for the seed, one per decision step
	assert.Equal(t, 1+int(ramp.Steps), sim.Reads())
	assert.Equal(t, 1, sim.Polls())
}

func TestController_Step_AutoLegsAreContiguous(t *testing.T) {
	// GIVEN
	sim := hardware.NewSimulated(hardware.ConstantInput(0x99), true)
	recorder := &ramp.LegRecorder{}
	c, _ := createController(sim, 30, recorder)
	c.Start()

	// WHEN
	for i := 0; i < 20; i++ {
		c.Step()
	}

	// THEN
	assert.Len(t, recorder.Legs, 20)
	assert.Equal(t, duty.DutyCycle(255), recorder.Legs[0].From)
	for i := 1; i < len(recorder.Legs); i++ {
		assert.Equal(t, recorder.Legs[i-1].To, recorder.Legs[i].From)
	}
	for _, value := range sim.Writes() {
		assert.GreaterOrEqual(t, value, uint8(30))
	}
}

func TestController_Step_ModeChangeBetweenLegs(t *testing.T) {
	// GIVEN
	sim := hardware.NewSimulated(hardware.ConstantInput(200), true)
	c, _ := createController(sim, 0)
	c.Start()

	// WHEN
	first := c.Step()
	sim.SetAuto(false)
	second := c.Step()

	// THEN
	assert.Equal(t, ModeAuto, first)
	assert.Equal(t, ModeManual, second)
	assert.Equal(t, duty.DutyCycle(200), c.Current())
	assert.Equal(t, 2, sim.Polls())
}

func TestController_Step_SwitchFlippedDuringLeg(t *testing.T) {
	// GIVEN
	sim := hardware.NewSimulated(hardware.ConstantInput(0x40), true)
	io := &countingIO{Simulated: sim}
	io.onRead = func(reads int) {
		// first read seeds the generator, the rest are rate samples of the leg
		if reads == 100 {
			sim.SetAuto(false)
		}
	}
	recorder := &ramp.LegRecorder{}
	c := NewController(io, Options{
		PwmMin:     62,
		WarmupDuty: DefaultWarmupDuty,
		Delay:      ramp.NewDelay(0, ramp.DefaultDelayOffset, &ramp.CountingTicker{}),
		Recorders:  []ramp.Recorder{recorder},
	})
	c.Start()

	_, targetSample := random.Next(0x4000, 0)
	expectedTarget := duty.NewScaler(62).Scale(targetSample)

	// WHEN
	mode := c.Step()

	// THEN
	assert.Equal(t, ModeAuto, mode)
	assert.NotEqual(t, duty.DutyCycle(255), expectedTarget)
	assert.Equal(t, expectedTarget, c.Current())

	writes := sim.Writes()
	assert.Len(t, writes, 1+int(255-expectedTarget))
	assert.Equal(t, uint8(expectedTarget), writes[len(writes)-1])

	assert.Len(t, recorder.Legs, 1)
	assert.Len(t, recorder.Legs[0].Waits, int(ramp.Steps))
	assert.Equal(t, 1+int(ramp.Steps), sim.Reads())
	assert.Equal(t, 1, sim.Polls())

	// the flipped switch is only observed by the next step
	assert.Equal(t, ModeManual, c.Step())
	assert.Equal(t, 2, sim.Polls())
}

func TestController_Run_CancelledDuringLeg(t *testing.T) {
	// GIVEN
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sim := hardware.NewSimulated(hardware.ConstantInput(0x40), true)
	io := &countingIO{Simulated: sim}
	io.onRead = func(reads int) {
		if reads == 50 {
			cancel()
		}
	}
	recorder := &legEndRecorder{ctx: ctx}
	c := NewController(io, Options{
		PwmMin:     62,
		WarmupDuty: DefaultWarmupDuty,
		Delay:      ramp.NewDelay(0, ramp.DefaultDelayOffset, &ramp.CountingTicker{}),
		Recorders:  []ramp.Recorder{recorder},
	})

	// WHEN
	err := c.Run(ctx)

	// THEN
	assert.NoError(t, err)

	assert.Len(t, recorder.Legs, 1)
	assert.Len(t, recorder.Legs[0].Waits, int(ramp.Steps))
	// the leg completed after the cancellation arrived
	assert.Equal(t, []error{context.Canceled}, recorder.errors)
	assert.Equal(t, uint64(1), c.Statistics().Snapshot().Legs)

	writes := sim.Writes()
	assert.Equal(t, uint8(recorder.Legs[0].To), writes[len(writes)-1])
	assert.Equal(t, recorder.Legs[0].To, c.Current())
	assert.Equal(t, 1, sim.Polls())
}

func TestController_Run_CancelledContext(t *testing.T) {
	// GIVEN
	sim := hardware.NewSimulated(hardware.ConstantInput(5), true)
	c, _ := createController(sim, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// WHEN
	err := c.Run(ctx)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []uint8{255}, sim.Writes())
	assert.Equal(t, 0, sim.Polls())
}

func TestController_Run_Manual(t *testing.T) {
	// GIVEN
	sim := hardware.NewSimulated(hardware.ConstantInput(77), false)
	c, _ := createController(sim, 0)
	c.manualPollingRate = time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// WHEN
	err := c.Run(ctx)

	// THEN
	assert.NoError(t, err)
	snapshot := c.Statistics().Snapshot()
	assert.Equal(t, ModeManual, snapshot.Mode)
	assert.Equal(t, uint8(77), snapshot.Duty)
	assert.Greater(t, snapshot.ManualIterations, uint64(0))
}
