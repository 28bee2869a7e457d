package inputs

import (
	"fmt"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/util"
)

// HwMonInput reads a voltage input of a hwmon chip
type HwMonInput struct {
	Label  string                    `json:"label"`
	Path   string                    `json:"path"`
	Config configuration.InputConfig `json:"configuration"`
}

func (input HwMonInput) GetId() string {
	return input.Config.ID
}

func (input HwMonInput) GetConfig() configuration.InputConfig {
	return input.Config
}

func (input HwMonInput) Read() (uint8, error) {
	millivolts, err := util.ReadIntFromFile(input.Path)
	if err != nil {
		return 0, fmt.Errorf("input %s: %w", input.GetId(), err)
	}

	volts := float64(millivolts) / 1000
	return util.MapToByte(volts, input.Config.HwMon.Min, input.Config.HwMon.Max), nil
}
