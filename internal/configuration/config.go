package configuration

import (
	"os"
	"time"

	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	// DbPath is the location of the simulation trace database
	DbPath string `json:"dbPath"`

	Controller ControllerConfig `json:"controller"`
	Ramp       RampConfig       `json:"ramp"`

	Inputs   []InputConfig  `json:"inputs"`
	Outputs  []OutputConfig `json:"outputs"`
	Switches []SwitchConfig `json:"switches"`

	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("spiro2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/spiro2go/")
	}

	viper.SetEnvPrefix("spiro2go")
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("dbPath", "/var/lib/spiro2go/traces.db")

	viper.SetDefault("controller.pwmMin", 0)
	viper.SetDefault("controller.warmupDuty", 255)
	viper.SetDefault("controller.warmupDuration", 250*time.Millisecond)
	viper.SetDefault("controller.manualPollingRate", 10*time.Millisecond)

	viper.SetDefault("ramp.delayOffset", 10)
	viper.SetDefault("ramp.countdownBudget", 0x2000)
	viper.SetDefault("ramp.ticker", TickerSleep)
	viper.SetDefault("ramp.tickDuration", 4*time.Microsecond)
	viper.SetDefault("ramp.spinLoops", 100)

	viper.SetDefault("inputs", []InputConfig{})
	viper.SetDefault("outputs", []OutputConfig{})
	viper.SetDefault("switches", []SwitchConfig{})

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)
}

// DetectAndReadConfigFile reads the config file and returns the path of the file that was used.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		// config file is required, so we fail here
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

// ReadConfigFileIfPresent reads the config file if one can be found.
// It returns an empty path otherwise, leaving only defaults and env overrides.
func ReadConfigFileIfPresent() string {
	if err := viper.ReadInConfig(); err != nil {
		ui.Debug("No config file loaded: %v", err)
		return ""
	}
	return viper.ConfigFileUsed()
}

// LoadConfig decodes the current viper state into CurrentConfig
func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(decodeHooks()))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		DutyValueHookFunc(),
	)
}
