package configuration

type SwitchConfig struct {
	ID     string              `json:"id"`
	File   *FileSwitchConfig   `json:"file,omitempty"`
	Cmd    *CmdSwitchConfig    `json:"cmd,omitempty"`
	Static *StaticSwitchConfig `json:"static,omitempty"`
}

type FileSwitchConfig struct {
	Path string `json:"path"`
	// ActiveLow inverts the read value, e.g. for a switch pulling a pin to ground
	ActiveLow bool `json:"activeLow"`
}

type CmdSwitchConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

type StaticSwitchConfig struct {
	Auto bool `json:"auto"`
}
