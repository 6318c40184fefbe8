package internal

import (
	"fmt"

	"github.com/markusressel/ecfan/internal/configuration"
	"github.com/markusressel/ecfan/internal/ec"
	"github.com/markusressel/ecfan/internal/fans"
	"github.com/spf13/afero"
)

// LoadBank loads the register image from the configured device file
func LoadBank(fs afero.Fs, config configuration.EcConfig) (*ec.RegisterBank, error) {
	bank, err := ec.LoadRegisterBank(fs, config.ReadPath, config.WritePath)
	if err != nil {
		return nil, fmt.Errorf("unable to load embedded controller registers: %w", err)
	}
	return bank, nil
}

// CreateFans creates all configured fans on top of bank and adds them to fans.FanMap
func CreateFans(config configuration.Configuration, bank *ec.RegisterBank) ([]*fans.Fan, error) {
	var fanList []*fans.Fan
	for _, fanConfig := range config.Fans {
		fan, err := fans.NewFan(fanConfig, bank, config.MaxTemp)
		if err != nil {
			return nil, fmt.Errorf("unable to process fan configuration %s: %w", fanConfig.Name, err)
		}
		if config.HistoryLength > 0 {
			if err := fan.SetHistoryLength(config.HistoryLength); err != nil {
				return nil, err
			}
		}
		if config.AvgWindowSize > 0 {
			if err := fan.SetAvgWindowSize(config.AvgWindowSize); err != nil {
				return nil, err
			}
		}
		fans.FanMap.Set(fan.GetName(), fan)
		fanList = append(fanList, fan)
	}
	return fanList, nil
}

// InitializeObjects loads the register bank and creates all configured fans
func InitializeObjects(fs afero.Fs, config configuration.Configuration) (*ec.RegisterBank, []*fans.Fan, error) {
	bank, err := LoadBank(fs, config.Ec)
	if err != nil {
		return nil, nil, err
	}
	fanList, err := CreateFans(config, bank)
	if err != nil {
		return nil, nil, err
	}
	return bank, fanList, nil
}

// FindFan returns the fan with the given name from fans.FanMap
func FindFan(name string) (*fans.Fan, error) {
	fan, ok := fans.FanMap.Get(name)
	if !ok {
		return nil, fmt.Errorf("no fan with name found: %s", name)
	}
	return fan, nil
}
