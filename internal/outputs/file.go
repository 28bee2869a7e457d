package outputs

import (
	"fmt"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/util"
)

// FileOutput writes the duty as an integer, e.g. to a sysfs "pwmN" file
type FileOutput struct {
	Config configuration.OutputConfig `json:"configuration"`
}

func (output *FileOutput) GetId() string {
	return output.Config.ID
}

func (output *FileOutput) GetConfig() configuration.OutputConfig {
	return output.Config
}

func (output *FileOutput) SetDuty(value uint8) error {
	filePath, err := util.ExpandHomeDir(output.Config.File.Path)
	if err != nil {
		return err
	}

	if output.Config.File.Atomic {
		err = util.WriteIntToFileAtomic(int(value), filePath)
	} else {
		err = util.WriteIntToFile(int(value), filePath)
	}
	if err != nil {
		return fmt.Errorf("output %s: %w", output.GetId(), err)
	}
	return nil
}

func (output *FileOutput) GetDuty() (uint8, error) {
	filePath, err := util.ExpandHomeDir(output.Config.File.Path)
	if err != nil {
		return 0, err
	}

	value, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("output %s: %w", output.GetId(), err)
	}
	return uint8(util.Coerce(value, MinDutyValue, MaxDutyValue)), nil
}
