package outputs

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/util"
)

const (
	cmdTimeout     = 2 * time.Second
	pwmPlaceholder = "%pwm%"
)

// CmdOutput executes a command for every duty change
type CmdOutput struct {
	Config configuration.OutputConfig `json:"configuration"`

	mu   sync.Mutex
	duty uint8
}

func (output *CmdOutput) GetId() string {
	return output.Config.ID
}

func (output *CmdOutput) GetConfig() configuration.OutputConfig {
	return output.Config
}

func (output *CmdOutput) SetDuty(value uint8) error {
	conf := output.Config.Cmd.SetPwm

	args := util.ReplacePlaceholder(conf.Args, pwmPlaceholder, strconv.Itoa(int(value)))
	_, err := util.SafeCmdExecution(conf.Exec, args, cmdTimeout)
	if err != nil {
		return fmt.Errorf("output %s: %w", output.GetId(), err)
	}

	output.mu.Lock()
	output.duty = value
	output.mu.Unlock()
	return nil
}

// GetDuty runs the optional getPwm command, without one the last applied value is returned
func (output *CmdOutput) GetDuty() (uint8, error) {
	conf := output.Config.Cmd.GetPwm
	if conf == nil {
		output.mu.Lock()
		defer output.mu.Unlock()
		return output.duty, nil
	}

	result, err := util.SafeCmdExecution(conf.Exec, conf.Args, cmdTimeout)
	if err != nil {
		return 0, fmt.Errorf("output %s: %w", output.GetId(), err)
	}

	value, err := strconv.Atoi(result)
	if err != nil {
		return 0, fmt.Errorf("output %s: unable to parse command output '%s': %w", output.GetId(), result, err)
	}
	return uint8(util.Coerce(value, MinDutyValue, MaxDutyValue)), nil
}
