package inputs

import (
	"fmt"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/util"
)

// FileInput reads an integer from a file, e.g. the raw value of an iio ADC channel
type FileInput struct {
	Config configuration.InputConfig `json:"configuration"`
}

func (input FileInput) GetId() string {
	return input.Config.ID
}

func (input FileInput) GetConfig() configuration.InputConfig {
	return input.Config
}

func (input FileInput) Read() (uint8, error) {
	filePath, err := util.ExpandHomeDir(input.Config.File.Path)
	if err != nil {
		return 0, err
	}

	value, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("input %s: %w", input.GetId(), err)
	}

	return util.ReduceToByte(value, input.Config.File.Bits), nil
}
