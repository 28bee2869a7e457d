package switches

import (
	"fmt"
	"strconv"
	"time"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/util"
)

const cmdTimeout = 2 * time.Second

// CmdSwitch executes a command printing the switch state
type CmdSwitch struct {
	Config configuration.SwitchConfig `json:"configuration"`
}

func (s CmdSwitch) GetId() string {
	return s.Config.ID
}

func (s CmdSwitch) GetConfig() configuration.SwitchConfig {
	return s.Config
}

func (s CmdSwitch) IsAuto() (bool, error) {
	result, err := util.SafeCmdExecution(s.Config.Cmd.Exec, s.Config.Cmd.Args, cmdTimeout)
	if err != nil {
		return false, fmt.Errorf("switch %s: %w", s.GetId(), err)
	}
	return parseState(s.GetId(), result)
}

// parseState accepts integers (non-zero is auto) as well as boolean strings
func parseState(id string, output string) (bool, error) {
	if value, err := strconv.Atoi(output); err == nil {
		return value != 0, nil
	}
	value, err := strconv.ParseBool(output)
	if err != nil {
		return false, fmt.Errorf("switch %s: unable to parse command output '%s'", id, output)
	}
	return value, nil
}
