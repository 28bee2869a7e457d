package outputs

import (
	"fmt"
	"io"
	"sync"

	"github.com/markusressel/spiro2go/internal/configuration"
	"go.bug.st/serial"
)

const DefaultBaudRate = 115200

type portOpener func(name string, baudRate int) (io.WriteCloser, error)

func openSerialPort(name string, baudRate int) (io.WriteCloser, error) {
	return serial.Open(name, &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
}

// SerialOutput sends "<duty>\n" lines to a microcontroller generating the PWM signal.
// The port is opened on first use and reopened after a failed write.
type SerialOutput struct {
	Config configuration.OutputConfig `json:"configuration"`

	mu   sync.Mutex
	open portOpener
	port io.WriteCloser
	duty uint8
}

func NewSerialOutput(config configuration.OutputConfig) *SerialOutput {
	return &SerialOutput{
		Config: config,
		open:   openSerialPort,
	}
}

func (output *SerialOutput) GetId() string {
	return output.Config.ID
}

func (output *SerialOutput) GetConfig() configuration.OutputConfig {
	return output.Config
}

func (output *SerialOutput) SetDuty(value uint8) error {
	output.mu.Lock()
	defer output.mu.Unlock()

	if output.port == nil {
		baudRate := output.Config.Serial.BaudRate
		if baudRate <= 0 {
			baudRate = DefaultBaudRate
		}
		port, err := output.open(output.Config.Serial.Port, baudRate)
		if err != nil {
			return fmt.Errorf("output %s: open %s: %w", output.GetId(), output.Config.Serial.Port, err)
		}
		output.port = port
	}

	if _, err := fmt.Fprintf(output.port, "%d\n", value); err != nil {
		_ = output.port.Close()
		output.port = nil
		return fmt.Errorf("output %s: write: %w", output.GetId(), err)
	}

	output.duty = value
	return nil
}

// GetDuty returns the last value sent, the bridge does not report it back
func (output *SerialOutput) GetDuty() (uint8, error) {
	output.mu.Lock()
	defer output.mu.Unlock()
	return output.duty, nil
}

func (output *SerialOutput) Close() error {
	output.mu.Lock()
	defer output.mu.Unlock()
	if output.port == nil {
		return nil
	}
	err := output.port.Close()
	output.port = nil
	return err
}
