package configuration

type OutputConfig struct {
	ID     string              `json:"id"`
	File   *FileOutputConfig   `json:"file,omitempty"`
	Cmd    *CmdOutputConfig    `json:"cmd,omitempty"`
	Serial *SerialOutputConfig `json:"serial,omitempty"`
}

type FileOutputConfig struct {
	Path string `json:"path"`
	// Atomic writes the value to a temp file first and renames it afterwards
	Atomic bool `json:"atomic"`
}

type ExecConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

type CmdOutputConfig struct {
	// SetPwm is executed for every duty change, "%pwm%" in Args is replaced by the value
	SetPwm *ExecConfig `json:"setPwm"`
	// GetPwm is optional and prints the current duty
	GetPwm *ExecConfig `json:"getPwm,omitempty"`
}

type SerialOutputConfig struct {
	Port string `json:"port"`
	// BaudRate defaults to 115200 if not set
	BaudRate int `json:"baudRate"`
}
