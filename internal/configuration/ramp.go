package configuration

import "time"

const (
	TickerSleep = "sleep"
	TickerSpin  = "spin"
)

type RampConfig struct {
	// DelayOffset is added to every knob sample while counting down
	DelayOffset int `json:"delayOffset"`
	// CountdownBudget is the starting value of the countdown after each decision step
	CountdownBudget int `json:"countdownBudget"`

	// Ticker selects how a countdown iteration is turned into wall clock time: sleep | spin
	Ticker       string        `json:"ticker"`
	TickDuration time.Duration `json:"tickDuration"`
	SpinLoops    int           `json:"spinLoops"`
}
