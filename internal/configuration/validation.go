package configuration

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

const (
	minRegisterValue = 0
	maxRegisterValue = 255
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if len(config.Ec.ReadPath) <= 0 {
		return errors.New("ec: missing readPath")
	}
	if len(config.Ec.WritePath) <= 0 {
		return errors.New("ec: missing writePath")
	}
	if config.MaxTemp <= 0 {
		return fmt.Errorf("maxTemp must be > 0, was %d", config.MaxTemp)
	}
	if config.HistoryLength <= 0 {
		return fmt.Errorf("historyLength must be > 0, was %d", config.HistoryLength)
	}
	if config.PollingRate <= 0 {
		return fmt.Errorf("pollingRate must be > 0, was %v", config.PollingRate)
	}
	if config.AvgWindowSize <= 0 {
		return fmt.Errorf("avgWindowSize must be > 0, was %d", config.AvgWindowSize)
	}

	return validateFans(config)
}

func validateFans(config *Configuration) error {
	if len(config.Fans) <= 0 {
		return errors.New("no fans configured")
	}

	var names []string
	for _, fanConfig := range config.Fans {
		if len(fanConfig.Name) <= 0 {
			return errors.New("fan: missing name")
		}
		if slices.Contains(names, fanConfig.Name) {
			return fmt.Errorf("duplicate fan name detected: %s", fanConfig.Name)
		}
		names = append(names, fanConfig.Name)

		if err := validateFan(fanConfig); err != nil {
			return fmt.Errorf("fan %s: %w", fanConfig.Name, err)
		}
	}

	return nil
}

func validateFan(config FanConfig) error {
	mode := config.Mode
	if err := validateRegisterAddress(mode.Register); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	if mode.Manual == mode.Auto {
		return fmt.Errorf("mode: manual and auto value must differ, both are %d", mode.Manual)
	}
	if !isByte(mode.Manual) || !isByte(mode.Auto) {
		return fmt.Errorf("mode: manual (%d) and auto (%d) must be in [%d..%d]", mode.Manual, mode.Auto, minRegisterValue, maxRegisterValue)
	}

	if len(config.Read) <= 0 {
		return errors.New("read: at least one register is required")
	}
	for i, channel := range config.Read {
		if err := validateChannel(channel); err != nil {
			return fmt.Errorf("read[%d]: %w", i, err)
		}
	}

	if len(config.Write) <= 0 {
		return errors.New("write: at least one register is required")
	}
	for i, channel := range config.Write {
		if err := validateChannel(channel); err != nil {
			return fmt.Errorf("write[%d]: %w", i, err)
		}
	}

	if err := validateRegisterAddress(config.Temp); err != nil {
		return fmt.Errorf("temp: %w", err)
	}

	return nil
}

func validateChannel(config ChannelConfig) error {
	if err := validateRegisterAddress(config.Register); err != nil {
		return err
	}
	if config.Min >= config.Max {
		return fmt.Errorf("min (%d) must be lower than max (%d)", config.Min, config.Max)
	}
	if !isByte(config.Min) || !isByte(config.Max) {
		return fmt.Errorf("min (%d) and max (%d) must be in [%d..%d]", config.Min, config.Max, minRegisterValue, maxRegisterValue)
	}
	return nil
}

func validateRegisterAddress(address RegisterAddress) error {
	if !isByte(int(address)) {
		return fmt.Errorf("invalid register address %d, must be in [%s..%s]", int(address), RegisterAddress(minRegisterValue), RegisterAddress(maxRegisterValue))
	}
	return nil
}

func isByte(value int) bool {
	return value >= minRegisterValue && value <= maxRegisterValue
}
