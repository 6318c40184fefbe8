package fans

import (
	"github.com/markusressel/ecfan/internal/configuration"
	"github.com/markusressel/ecfan/internal/ec"
	"github.com/markusressel/ecfan/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const (
	// Resolution is the size of the normalized control scale [0..Resolution]
	Resolution = 50

	DefaultHistoryLength = 500
	DefaultAvgWindowSize = 10
)

var (
	FanMap = cmap.New[*Fan]()
)

// MapValue translates a value of the hardware domain [min, max] into the normalized scale:
//
//	floor(((raw - min) / (max - min)) * Resolution)
//
// MapValue and UnmapValue are not exact inverses of each other because of the truncation.
func MapValue(raw int, min int, max int) int {
	return util.FloorDiv((raw-min)*Resolution, max-min)
}

// UnmapValue translates a normalized value back into the hardware domain [min, max]:
//
//	floor(((normalized * (max - min)) / Resolution) + min)
func UnmapValue(normalized int, min int, max int) int {
	return util.FloorDiv(normalized*(max-min), Resolution) + min
}

// NewFan creates a Fan from its declarative configuration, bound to the given register bank.
// The temperature channel uses the domain [0, maxTemp], moving averages use
// DefaultAvgWindowSize until changed with SetAvgWindowSize.
func NewFan(config configuration.FanConfig, bank *ec.RegisterBank, maxTemp int) (*Fan, error) {
	mode, err := ec.NewModeRegister(int(config.Mode.Register), bank, config.Mode.Manual, config.Mode.Auto)
	if err != nil {
		return nil, err
	}

	var readList []*ec.BoundedRegister
	for _, readConfig := range config.Read {
		register, err := ec.NewBoundedRegister(int(readConfig.Register), bank, readConfig.Min, readConfig.Max)
		if err != nil {
			return nil, err
		}
		readList = append(readList, register)
	}

	var writeList []*ec.BoundedRegister
	for _, writeConfig := range config.Write {
		register, err := ec.NewBoundedRegister(int(writeConfig.Register), bank, writeConfig.Min, writeConfig.Max)
		if err != nil {
			return nil, err
		}
		writeList = append(writeList, register)
	}

	temp, err := ec.NewBoundedRegister(int(config.Temp), bank, 0, maxTemp)
	if err != nil {
		return nil, err
	}

	return newFan(config.Name, mode, readList, writeList, temp, DefaultAvgWindowSize), nil
}
