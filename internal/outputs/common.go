package outputs

import (
	"fmt"

	"github.com/markusressel/spiro2go/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const (
	MinDutyValue = 0
	MaxDutyValue = 255
)

var (
	OutputMap = cmap.New[Output]()
)

// Output is a PWM line driven with an 8-bit duty cycle
type Output interface {
	GetId() string

	GetConfig() configuration.OutputConfig

	// SetDuty applies the given duty cycle immediately
	SetDuty(value uint8) error
	// GetDuty returns the duty cycle currently applied
	GetDuty() (uint8, error)
}

func NewOutput(config configuration.OutputConfig) (Output, error) {
	if config.File != nil {
		return &FileOutput{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdOutput{
			Config: config,
		}, nil
	}

	if config.Serial != nil {
		return NewSerialOutput(config), nil
	}

	return nil, fmt.Errorf("no matching output type for output: %s", config.ID)
}
