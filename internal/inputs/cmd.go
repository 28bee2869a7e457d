package inputs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/util"
)

const cmdTimeout = 2 * time.Second

// CmdInput executes a command which prints the sampled value
type CmdInput struct {
	Config configuration.InputConfig `json:"configuration"`
}

func (input CmdInput) GetId() string {
	return input.Config.ID
}

func (input CmdInput) GetConfig() configuration.InputConfig {
	return input.Config
}

func (input CmdInput) Read() (uint8, error) {
	exec := input.Config.Cmd.Exec
	args := input.Config.Cmd.Args
	result, err := util.SafeCmdExecution(exec, args, cmdTimeout)
	if err != nil {
		return 0, fmt.Errorf("input %s: %w", input.GetId(), err)
	}

	return parseSample(input.GetId(), result, input.Config.Cmd.Bits)
}

func parseSample(id string, output string, bits int) (uint8, error) {
	value, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("input %s: unable to parse command output '%s': %w", id, output, err)
	}
	return util.ReduceToByte(value, bits), nil
}
