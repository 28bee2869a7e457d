package configuration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/markusressel/spiro2go/internal/util"
	"golang.org/x/exp/slices"
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	err := validateInputs(config)
	if err != nil {
		return err
	}
	err = validateOutputs(config)
	if err != nil {
		return err
	}
	err = validateSwitches(config)
	if err != nil {
		return err
	}
	err = validateController(config)
	if err != nil {
		return err
	}
	err = validateRamp(config)
	if err != nil {
		return err
	}
	err = validateServers(config)
	if err != nil {
		return err
	}

	if containsCmdDevices(config) {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %w", path, err)
		}
	}

	return nil
}

func containsCmdDevices(config *Configuration) bool {
	for _, inputConfig := range config.Inputs {
		if inputConfig.Cmd != nil {
			return true
		}
	}
	for _, outputConfig := range config.Outputs {
		if outputConfig.Cmd != nil {
			return true
		}
	}
	for _, switchConfig := range config.Switches {
		if switchConfig.Cmd != nil {
			return true
		}
	}
	return false
}

func validateInputs(config *Configuration) error {
	var ids []string
	for _, inputConfig := range config.Inputs {
		if len(inputConfig.ID) <= 0 {
			return errors.New("Input: missing id")
		}
		if slices.Contains(ids, inputConfig.ID) {
			return fmt.Errorf("Input %s: duplicate id", inputConfig.ID)
		}
		ids = append(ids, inputConfig.ID)

		subConfigs := countNonNil(inputConfig.File != nil, inputConfig.Cmd != nil, inputConfig.HwMon != nil, inputConfig.Static != nil)
		if subConfigs > 1 {
			return fmt.Errorf("Input %s: only one input type can be used per input definition block", inputConfig.ID)
		}
		if subConfigs <= 0 {
			return fmt.Errorf("Input %s: sub-configuration for input is missing, use one of: file | cmd | hwmon | static", inputConfig.ID)
		}

		if inputConfig.ID != config.Controller.Input {
			ui.Warning("Unused input configuration: %s", inputConfig.ID)
		}

		if inputConfig.File != nil {
			if len(inputConfig.File.Path) <= 0 {
				return fmt.Errorf("Input %s: no file path provided", inputConfig.ID)
			}
			if err := validateBits(inputConfig.File.Bits); err != nil {
				return fmt.Errorf("Input %s: %w", inputConfig.ID, err)
			}
		}

		if inputConfig.Cmd != nil {
			if len(inputConfig.Cmd.Exec) <= 0 {
				return fmt.Errorf("Input %s: executable is missing", inputConfig.ID)
			}
			if err := validateBits(inputConfig.Cmd.Bits); err != nil {
				return fmt.Errorf("Input %s: %w", inputConfig.ID, err)
			}
		}

		if inputConfig.HwMon != nil {
			hwmonConfig := inputConfig.HwMon
			if len(hwmonConfig.Platform) <= 0 {
				return fmt.Errorf("Input %s: missing platform", inputConfig.ID)
			}
			if _, err := regexp.Compile(hwmonConfig.Platform); err != nil {
				return fmt.Errorf("Input %s: invalid platform regex: %w", inputConfig.ID, err)
			}
			if len(hwmonConfig.Feature) <= 0 {
				return fmt.Errorf("Input %s: missing feature", inputConfig.ID)
			}
			if hwmonConfig.Min >= hwmonConfig.Max {
				return fmt.Errorf("Input %s: min (%v) must be lower than max (%v)", inputConfig.ID, hwmonConfig.Min, hwmonConfig.Max)
			}
		}
	}

	return nil
}

func validateBits(bits int) error {
	if bits == 0 {
		return nil
	}
	if bits < 8 || bits > 16 {
		return fmt.Errorf("invalid bits value %d, must be in range [8..16]", bits)
	}
	return nil
}

func validateOutputs(config *Configuration) error {
	var ids []string
	for _, outputConfig := range config.Outputs {
		if len(outputConfig.ID) <= 0 {
			return errors.New("Output: missing id")
		}
		if slices.Contains(ids, outputConfig.ID) {
			return fmt.Errorf("Output %s: duplicate id", outputConfig.ID)
		}
		ids = append(ids, outputConfig.ID)

		subConfigs := countNonNil(outputConfig.File != nil, outputConfig.Cmd != nil, outputConfig.Serial != nil)
		if subConfigs > 1 {
			return fmt.Errorf("Output %s: only one output type can be used per output definition block", outputConfig.ID)
		}
		if subConfigs <= 0 {
			return fmt.Errorf("Output %s: sub-configuration for output is missing, use one of: file | cmd | serial", outputConfig.ID)
		}

		if outputConfig.ID != config.Controller.Output {
			ui.Warning("Unused output configuration: %s", outputConfig.ID)
		}

		if outputConfig.File != nil {
			if len(outputConfig.File.Path) <= 0 {
				return fmt.Errorf("Output %s: no file path provided", outputConfig.ID)
			}
		}

		if outputConfig.Cmd != nil {
			cmdConfig := outputConfig.Cmd
			if cmdConfig.SetPwm == nil {
				return fmt.Errorf("Output %s: missing setPwm configuration", outputConfig.ID)
			}
			if len(cmdConfig.SetPwm.Exec) <= 0 {
				return fmt.Errorf("Output %s: setPwm executable is missing", outputConfig.ID)
			}
			if cmdConfig.GetPwm != nil && len(cmdConfig.GetPwm.Exec) <= 0 {
				return fmt.Errorf("Output %s: getPwm executable is missing", outputConfig.ID)
			}
		}

		if outputConfig.Serial != nil {
			if len(outputConfig.Serial.Port) <= 0 {
				return fmt.Errorf("Output %s: no serial port provided", outputConfig.ID)
			}
			if outputConfig.Serial.BaudRate < 0 {
				return fmt.Errorf("Output %s: invalid baud rate %d", outputConfig.ID, outputConfig.Serial.BaudRate)
			}
		}
	}

	return nil
}

func validateSwitches(config *Configuration) error {
	var ids []string
	for _, switchConfig := range config.Switches {
		if len(switchConfig.ID) <= 0 {
			return errors.New("Switch: missing id")
		}
		if slices.Contains(ids, switchConfig.ID) {
			return fmt.Errorf("Switch %s: duplicate id", switchConfig.ID)
		}
		ids = append(ids, switchConfig.ID)

		subConfigs := countNonNil(switchConfig.File != nil, switchConfig.Cmd != nil, switchConfig.Static != nil)
		if subConfigs > 1 {
			return fmt.Errorf("Switch %s: only one switch type can be used per switch definition block", switchConfig.ID)
		}
		if subConfigs <= 0 {
			return fmt.Errorf("Switch %s: sub-configuration for switch is missing, use one of: file | cmd | static", switchConfig.ID)
		}

		if switchConfig.ID != config.Controller.Switch {
			ui.Warning("Unused switch configuration: %s", switchConfig.ID)
		}

		if switchConfig.File != nil && len(switchConfig.File.Path) <= 0 {
			return fmt.Errorf("Switch %s: no file path provided", switchConfig.ID)
		}

		if switchConfig.Cmd != nil && len(switchConfig.Cmd.Exec) <= 0 {
			return fmt.Errorf("Switch %s: executable is missing", switchConfig.ID)
		}
	}

	return nil
}

func validateController(config *Configuration) error {
	controllerConfig := config.Controller

	if len(controllerConfig.Input) <= 0 {
		return errors.New("Controller: missing input")
	}
	if !inputIdExists(controllerConfig.Input, config) {
		return fmt.Errorf("Controller: no input definition with id '%s' found", controllerConfig.Input)
	}

	if len(controllerConfig.Output) <= 0 {
		return errors.New("Controller: missing output")
	}
	if !outputIdExists(controllerConfig.Output, config) {
		return fmt.Errorf("Controller: no output definition with id '%s' found", controllerConfig.Output)
	}

	if len(controllerConfig.Switch) <= 0 {
		return errors.New("Controller: missing switch")
	}
	if !switchIdExists(controllerConfig.Switch, config) {
		return fmt.Errorf("Controller: no switch definition with id '%s' found", controllerConfig.Switch)
	}

	if controllerConfig.WarmupDuration < 0 {
		return fmt.Errorf("Controller: warmupDuration must not be negative")
	}
	if controllerConfig.ManualPollingRate < 0 {
		return fmt.Errorf("Controller: manualPollingRate must not be negative")
	}

	return nil
}

func validateRamp(config *Configuration) error {
	return ValidateRamp(config.Ramp)
}

// ValidateRamp checks that the ramp settings fit the signed 16 bit countdown of the delay
func ValidateRamp(rampConfig RampConfig) error {
	if rampConfig.DelayOffset < 1 || rampConfig.DelayOffset > math.MaxInt16-math.MaxUint8 {
		return fmt.Errorf("Ramp: delayOffset %d out of range [1..%d]", rampConfig.DelayOffset, math.MaxInt16-math.MaxUint8)
	}
	if rampConfig.CountdownBudget < 0 || rampConfig.CountdownBudget > math.MaxInt16 {
		return fmt.Errorf("Ramp: countdownBudget %d out of range [0..%d]", rampConfig.CountdownBudget, math.MaxInt16)
	}

	supportedTickers := []string{TickerSleep, TickerSpin}
	if !slices.Contains(supportedTickers, rampConfig.Ticker) {
		return fmt.Errorf("Ramp: unsupported ticker '%s', use one of: %s", rampConfig.Ticker, strings.Join(supportedTickers, " | "))
	}
	if rampConfig.Ticker == TickerSleep && rampConfig.TickDuration <= 0 {
		return errors.New("Ramp: tickDuration must be positive")
	}
	if rampConfig.Ticker == TickerSpin && rampConfig.SpinLoops <= 0 {
		return errors.New("Ramp: spinLoops must be positive")
	}

	return nil
}

func validateServers(config *Configuration) error {
	if config.Statistics.Enabled {
		if config.Statistics.Port <= 0 || config.Statistics.Port > 65535 {
			return fmt.Errorf("Statistics: invalid port %d", config.Statistics.Port)
		}
	}
	if config.Api.Enabled {
		if config.Api.Port <= 0 || config.Api.Port > 65535 {
			return fmt.Errorf("Api: invalid port %d", config.Api.Port)
		}
		if config.Statistics.Enabled && config.Statistics.Port == config.Api.Port {
			return fmt.Errorf("Api: port %d is already used by statistics", config.Api.Port)
		}
	}
	return nil
}

func countNonNil(present ...bool) int {
	count := 0
	for _, p := range present {
		if p {
			count++
		}
	}
	return count
}

func inputIdExists(inputId string, config *Configuration) bool {
	for _, input := range config.Inputs {
		if input.ID == inputId {
			return true
		}
	}
	return false
}

func outputIdExists(outputId string, config *Configuration) bool {
	for _, output := range config.Outputs {
		if output.ID == outputId {
			return true
		}
	}
	return false
}

func switchIdExists(switchId string, config *Configuration) bool {
	for _, s := range config.Switches {
		if s.ID == switchId {
			return true
		}
	}
	return false
}
