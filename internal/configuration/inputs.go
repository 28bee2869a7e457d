package configuration

type InputConfig struct {
	ID     string             `json:"id"`
	File   *FileInputConfig   `json:"file,omitempty"`
	Cmd    *CmdInputConfig    `json:"cmd,omitempty"`
	HwMon  *HwMonInputConfig  `json:"hwmon,omitempty"`
	Static *StaticInputConfig `json:"static,omitempty"`
}

type FileInputConfig struct {
	Path string `json:"path"`
	// Bits is the resolution of the sampled value, only the 8 most significant bits are used
	Bits int `json:"bits"`
}

type CmdInputConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
	Bits int      `json:"bits"`
}

type HwMonInputConfig struct {
	// Platform is a regex matched against the chip identifier
	Platform string `json:"platform"`
	// Feature is the name of the voltage subfeature, e.g. "in1_input"
	Feature string `json:"feature"`
	// Min and Max define the voltage range mapped to 0..255
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type StaticInputConfig struct {
	Value uint8 `json:"value"`
}
