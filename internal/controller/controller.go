package controller

import (
	"context"
	"time"

	"github.com/markusressel/spiro2go/internal/duty"
	"github.com/markusressel/spiro2go/internal/hardware"
	"github.com/markusressel/spiro2go/internal/random"
	"github.com/markusressel/spiro2go/internal/ramp"
	"github.com/markusressel/spiro2go/internal/ui"
)

type Mode string

const (
	ModeManual Mode = "manual"
	ModeAuto   Mode = "auto"
)

const (
	DefaultWarmupDuty     duty.DutyCycle = duty.MaxValue
	DefaultWarmupDuration                = 250 * time.Millisecond
)

type Options struct {
	PwmMin duty.DutyCycle

	WarmupDuty     duty.DutyCycle
	WarmupDuration time.Duration

	// ManualPollingRate pauses the loop between two manual mode iterations
	ManualPollingRate time.Duration

	Delay *ramp.Delay
	// Recorders additionally observe every ramp leg
	Recorders []ramp.Recorder
}

// Controller dispatches between manual and auto-ramp mode
type Controller struct {
	io        hardware.IO
	scaler    duty.Scaler
	generator *random.Generator
	engine    *ramp.Engine

	warmupDuty        duty.DutyCycle
	warmupDuration    time.Duration
	manualPollingRate time.Duration
	sleep             func(time.Duration)

	current duty.DutyCycle
	stats   *Statistics
}

func NewController(io hardware.IO, options Options) *Controller {
	stats := NewStatistics()

	delay := options.Delay
	if delay == nil {
		delay = ramp.NewDelay(ramp.DefaultCountdownBudget, ramp.DefaultDelayOffset, ramp.NewSleepTicker(ramp.DefaultTickDuration))
	}

	recorders := append([]ramp.Recorder{stats}, options.Recorders...)

	return &Controller{
		io:                io,
		scaler:            duty.NewScaler(options.PwmMin),
		generator:         random.NewGenerator(0),
		engine:            ramp.NewEngine(io, delay, recorders...),
		warmupDuty:        options.WarmupDuty,
		warmupDuration:    options.WarmupDuration,
		manualPollingRate: options.ManualPollingRate,
		sleep:             time.Sleep,
		stats:             stats,
	}
}

// Start seeds the generator from a single sample and holds the warm-up duty
func (c *Controller) Start() {
	sample := c.io.ReadInput()
	c.generator.Seed(sample)
	ui.Debug("Seeded generator with sample %d (state 0x%04x)", sample, c.generator.State())

	c.io.SetDuty(uint8(c.warmupDuty))
	c.current = c.warmupDuty
	c.stats.setDuty(c.current)
	c.stats.setRngState(c.generator.State())

	if c.warmupDuration > 0 {
		c.sleep(c.warmupDuration)
	}
}

// Step polls the mode switch once and runs a single unit of work:
// one manual iteration or one complete ramp leg.
func (c *Controller) Step() Mode {
	if !c.io.ReadModeSwitch() {
		c.stepManual()
		return ModeManual
	}
	c.stepAuto()
	return ModeAuto
}

func (c *Controller) stepManual() {
	sample := c.io.ReadInput()
	c.generator.Perturb(sample)

	c.current = c.scaler.Scale(sample)
	c.io.SetDuty(uint8(c.current))

	c.stats.onManual(c.current, c.generator.State())
}

func (c *Controller) stepAuto() {
	target := c.scaler.Scale(c.generator.Next())
	c.stats.setRngState(c.generator.State())
	ui.Debug("Ramping from %d to %d", c.current, target)

	c.current = c.engine.Ramp(c.current, target, c.io.ReadInput)
}

// Run starts the controller and executes steps until ctx is cancelled.
// Cancellation is only observed between steps, a running ramp leg always completes.
func (c *Controller) Run(ctx context.Context) error {
	c.Start()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		mode := c.Step()

		if mode == ModeManual && c.manualPollingRate > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.manualPollingRate):
			}
		}
	}
}

func (c *Controller) Current() duty.DutyCycle {
	return c.current
}

func (c *Controller) Generator() *random.Generator {
	return c.generator
}

func (c *Controller) Statistics() *Statistics {
	return c.stats
}
