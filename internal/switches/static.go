package switches

import (
	"github.com/markusressel/spiro2go/internal/configuration"
)

type StaticSwitch struct {
	Config configuration.SwitchConfig `json:"configuration"`
}

func (s StaticSwitch) GetId() string {
	return s.Config.ID
}

func (s StaticSwitch) GetConfig() configuration.SwitchConfig {
	return s.Config
}

func (s StaticSwitch) IsAuto() (bool, error) {
	return s.Config.Static.Auto, nil
}
