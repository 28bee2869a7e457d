package inputs

import (
	"github.com/markusressel/spiro2go/internal/configuration"
)

type StaticInput struct {
	Config configuration.InputConfig `json:"configuration"`
}

func (input StaticInput) GetId() string {
	return input.Config.ID
}

func (input StaticInput) GetConfig() configuration.InputConfig {
	return input.Config
}

func (input StaticInput) Read() (uint8, error) {
	return input.Config.Static.Value, nil
}
