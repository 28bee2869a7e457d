package configuration

import "time"

type ControllerConfig struct {
	// Input is the id of the input used as knob
	Input string `json:"input"`
	// Output is the id of the output driving the motor
	Output string `json:"output"`
	// Switch is the id of the manual/auto mode switch
	Switch string `json:"switch"`

	// PwmMin is the lowest duty the motor still rotates at
	PwmMin DutyValue `json:"pwmMin"`

	// WarmupDuty is applied for WarmupDuration on startup to get the motor spinning
	WarmupDuty     DutyValue     `json:"warmupDuty"`
	WarmupDuration time.Duration `json:"warmupDuration"`

	// ManualPollingRate is the pause between two iterations in manual mode
	ManualPollingRate time.Duration `json:"manualPollingRate"`
}
