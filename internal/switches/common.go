package switches

import (
	"fmt"

	"github.com/markusressel/spiro2go/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	SwitchMap = cmap.New[Switch]()
)

// Switch is the two-position mode selector
type Switch interface {
	GetId() string

	GetConfig() configuration.SwitchConfig

	// IsAuto returns true for auto-ramp mode, false for manual mode
	IsAuto() (bool, error)
}

func NewSwitch(config configuration.SwitchConfig) (Switch, error) {
	if config.File != nil {
		return &FileSwitch{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSwitch{
			Config: config,
		}, nil
	}

	if config.Static != nil {
		return &StaticSwitch{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching switch type for switch: %s", config.ID)
}
