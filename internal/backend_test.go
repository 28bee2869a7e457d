package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/duty"
	"github.com/markusressel/spiro2go/internal/ramp"
	"github.com/stretchr/testify/assert"
)

func createConfig(t *testing.T) configuration.Configuration {
	pwmPath := filepath.Join(t.TempDir(), "pwm0")
	err := os.WriteFile(pwmPath, []byte("0"), 0644)
	assert.NoError(t, err)

	return configuration.Configuration{
		Controller: configuration.ControllerConfig{
			Input:          "knob",
			Output:         "motor",
			Switch:         "mode",
			PwmMin:         62,
			WarmupDuty:     255,
			WarmupDuration: 250 * time.Millisecond,
		},
		Ramp: configuration.RampConfig{
			DelayOffset:     10,
			CountdownBudget: 0x2000,
			Ticker:          configuration.TickerSleep,
			TickDuration:    4 * time.Microsecond,
		},
		Inputs: []configuration.InputConfig{
			{ID: "knob", Static: &configuration.StaticInputConfig{Value: 128}},
		},
		Outputs: []configuration.OutputConfig{
			{ID: "motor", File: &configuration.FileOutputConfig{Path: pwmPath}},
		},
		Switches: []configuration.SwitchConfig{
			{ID: "mode", Static: &configuration.StaticSwitchConfig{Auto: false}},
		},
	}
}

func TestInitializeObjects(t *testing.T) {
	// GIVEN
	configuration.CurrentConfig = createConfig(t)

	// WHEN
	board, err := InitializeObjects()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, uint8(128), board.ReadInput())
	assert.False(t, board.ReadModeSwitch())

	board.SetDuty(200)
	assert.Equal(t, uint8(200), board.LastDuty())
	assert.Len(t, collectInputs(), 1)
	assert.Len(t, collectOutputs(), 1)
}

func TestInitializeObjects_MissingReference(t *testing.T) {
	// GIVEN
	config := createConfig(t)
	config.Controller.Switch = "other"
	configuration.CurrentConfig = config

	// WHEN
	_, err := InitializeObjects()

	// THEN
	assert.EqualError(t, err, "switch 'other' of controller not found")
}

func TestInitializeObjects_InvalidDevice(t *testing.T) {
	// GIVEN
	config := createConfig(t)
	config.Inputs = append(config.Inputs, configuration.InputConfig{ID: "empty"})
	configuration.CurrentConfig = config

	// WHEN
	_, err := InitializeObjects()

	// THEN
	assert.ErrorContains(t, err, "unable to process input configuration empty")
}

func TestNewControllerOptions(t *testing.T) {
	// GIVEN
	config := createConfig(t)

	// WHEN
	options := NewControllerOptions(config)

	// THEN
	assert.Equal(t, duty.DutyCycle(62), options.PwmMin)
	assert.Equal(t, duty.DutyCycle(255), options.WarmupDuty)
	assert.Equal(t, 250*time.Millisecond, options.WarmupDuration)
	assert.Equal(t, int16(0x2000), options.Delay.Budget)
	assert.Equal(t, int16(10), options.Delay.Offset)
	assert.IsType(t, &ramp.SleepTicker{}, options.Delay.Ticker)
}

func TestNewDelay_Spin(t *testing.T) {
	// GIVEN
	config := configuration.RampConfig{
		DelayOffset:     20,
		CountdownBudget: 100,
		Ticker:          configuration.TickerSpin,
		SpinLoops:       5,
	}

	// WHEN
	delay := NewDelay(config)

	// THEN
	assert.Equal(t, &ramp.SpinTicker{Loops: 5}, delay.Ticker)
	assert.Equal(t, 5, delay.Wait(0))
}
