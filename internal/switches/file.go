package switches

import (
	"fmt"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/util"
)

// FileSwitch reads a GPIO "value" file
type FileSwitch struct {
	Config configuration.SwitchConfig `json:"configuration"`
}

func (s FileSwitch) GetId() string {
	return s.Config.ID
}

func (s FileSwitch) GetConfig() configuration.SwitchConfig {
	return s.Config
}

func (s FileSwitch) IsAuto() (bool, error) {
	filePath, err := util.ExpandHomeDir(s.Config.File.Path)
	if err != nil {
		return false, err
	}

	value, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return false, fmt.Errorf("switch %s: %w", s.GetId(), err)
	}

	active := value != 0
	if s.Config.File.ActiveLow {
		active = !active
	}
	return active, nil
}
