package configuration

import (
	"os"
	"time"

	"github.com/markusressel/ecfan/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	Ec EcConfig `json:"ec"`

	// MaxTemp is the upper bound of the temperature domain [0, MaxTemp] of all fans
	MaxTemp int `json:"maxTemp"`

	HistoryLength int           `json:"historyLength"`
	PollingRate   time.Duration `json:"pollingRate"`
	AvgWindowSize int           `json:"avgWindowSize"`

	DbPath string `json:"dbPath"`

	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`
	Profiling  ProfilingConfig  `json:"profiling"`

	Fans []FanConfig `json:"fans"`
}

type EcConfig struct {
	// ReadPath is the device file the register image is loaded from
	ReadPath string `json:"readPath"`
	// WritePath is the device file the register image is committed to
	WritePath string `json:"writePath"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("ecfan")

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
		viper.AddConfigPath("/etc/ecfan/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues(viper.GetViper())
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("ec.readPath", "/sys/kernel/debug/ec/ec0/io")
	v.SetDefault("ec.writePath", "/sys/kernel/debug/ec/ec0/io")
	v.SetDefault("maxTemp", 100)
	v.SetDefault("historyLength", 500)
	v.SetDefault("pollingRate", 1*time.Second)
	v.SetDefault("avgWindowSize", 10)
	v.SetDefault("dbPath", "/etc/ecfan/ecfan.db")

	v.SetDefault("statistics.enabled", false)
	v.SetDefault("statistics.port", 9000)

	v.SetDefault("api.enabled", false)
	v.SetDefault("api.host", "localhost")
	v.SetDefault("api.port", 9001)

	v.SetDefault("profiling.enabled", false)
	v.SetDefault("profiling.host", "localhost")
	v.SetDefault("profiling.port", 6060)

	v.SetDefault("fans", []FanConfig{})
}

// DetectAndReadConfigFile reads the config file and returns its path
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		// config file is required, so we fail here
		ui.FatalWithoutStacktrace("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	config, err := unmarshal(viper.GetViper())
	if err != nil {
		ui.FatalWithoutStacktrace("unable to decode into struct, %v", err)
	}
	CurrentConfig = config
}

func unmarshal(v *viper.Viper) (config Configuration, err error) {
	err = v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			RegisterAddressHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	return config, err
}
