package inputs

import (
	"fmt"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/hwmon"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	InputMap = cmap.New[Input]()
)

// Input is an analog value source, sampled to 8 bits
type Input interface {
	GetId() string

	GetConfig() configuration.InputConfig

	// Read triggers a new sample and returns its 8 most significant bits
	Read() (uint8, error)
}

func NewInput(config configuration.InputConfig) (Input, error) {
	if config.File != nil {
		return &FileInput{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdInput{
			Config: config,
		}, nil
	}

	if config.HwMon != nil {
		voltage, err := hwmon.FindVoltageInput(hwmon.GetChips(), config.HwMon.Platform, config.HwMon.Feature)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", config.ID, err)
		}
		return &HwMonInput{
			Label:  voltage.Label,
			Path:   voltage.Path,
			Config: config,
		}, nil
	}

	if config.Static != nil {
		return &StaticInput{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching input type for input: %s", config.ID)
}
