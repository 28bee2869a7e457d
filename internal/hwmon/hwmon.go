package hwmon

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/md14454/gosensors"
)

const (
	BusTypeIsa  = 1
	BusTypePci  = 2
	BusTypeAcpi = 5
)

var voltageInputRegex = regexp.MustCompile(`^in\d+_input$`)

type Chip struct {
	Name     string
	Platform string
	Path     string

	Voltages []*VoltageInput
}

// VoltageInput is a single "inX_input" subfeature of a chip
type VoltageInput struct {
	Name  string
	Label string
	// Path is the sysfs file containing the current value in millivolts
	Path  string
	Value float64
}

// GetChips returns all detected chips with at least one voltage input
func GetChips() []*Chip {
	gosensors.Init()
	defer gosensors.Cleanup()
	chips := gosensors.GetDetectedChips()

	var list []*Chip
	for i := 0; i < len(chips); i++ {
		chip := chips[i]

		voltages := getVoltageInputs(chip)
		if len(voltages) <= 0 {
			continue
		}

		identifier := computeIdentifier(chip)
		platform := findPlatform(chip.Path)
		if len(platform) <= 0 {
			platform = identifier
		}

		list = append(list, &Chip{
			Name:     identifier,
			Platform: platform,
			Path:     chip.Path,
			Voltages: voltages,
		})
	}

	return list
}

// FindVoltageInput returns the voltage input with the given subfeature name
// of the first chip whose name or platform matches the platform regex.
func FindVoltageInput(chips []*Chip, platform string, feature string) (*VoltageInput, error) {
	platformRegex, err := regexp.Compile("(?i)" + platform)
	if err != nil {
		return nil, err
	}
	for _, chip := range chips {
		if !platformRegex.MatchString(chip.Name) && !platformRegex.MatchString(chip.Platform) {
			continue
		}
		for _, voltage := range chip.Voltages {
			if voltage.Name == feature {
				return voltage, nil
			}
		}
	}
	return nil, fmt.Errorf("no voltage input '%s' found on a chip matching '%s'", feature, platform)
}

func getVoltageInputs(chip gosensors.Chip) []*VoltageInput {
	var result []*VoltageInput

	features := chip.GetFeatures()
	for j := 0; j < len(features); j++ {
		subfeatures := features[j].GetSubFeatures()
		for _, subfeature := range subfeatures {
			if !voltageInputRegex.MatchString(subfeature.Name) {
				continue
			}
			result = append(result, &VoltageInput{
				Name:  subfeature.Name,
				Label: getLabel(chip.Path, subfeature.Name),
				Path:  filepath.Join(chip.Path, subfeature.Name),
				Value: subfeature.GetValue(),
			})
		}
	}

	return result
}

// getLabel read the label of an input of a device
func getLabel(devicePath string, input string) string {
	labelPath := strings.TrimSuffix(filepath.Join(devicePath, input), "input") + "label"

	content, _ := os.ReadFile(labelPath)
	label := strings.TrimSpace(string(content))
	if len(label) <= 0 {
		label = strings.TrimSuffix(input, "_input")
	}
	return label
}

func getDeviceName(devicePath string) string {
	content, _ := os.ReadFile(filepath.Join(devicePath, "name"))
	return strings.TrimSpace(string(content))
}

func computeIdentifier(chip gosensors.Chip) (name string) {
	name = chip.Prefix

	devicePath := chip.Path
	if len(name) <= 0 {
		name = getDeviceName(devicePath)
	}

	if len(name) <= 0 {
		_, name = filepath.Split(devicePath)
	}

	identifier := name
	switch chip.Bus.Type {
	case BusTypeIsa:
		identifier = fmt.Sprintf("%s-isa-%04x", identifier, chip.Addr)
	case BusTypePci:
		identifier = fmt.Sprintf("%s-pci-%04x", identifier, chip.Addr)
	case BusTypeAcpi:
		identifier = fmt.Sprintf("%s-acpi-%d", identifier, chip.Bus.Nr)
	}

	return identifier
}

func findPlatform(devicePath string) string {
	platformRegex := regexp.MustCompile(`.*/platform/([^/]+)/.*`)
	matches := platformRegex.FindStringSubmatch(devicePath)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}
