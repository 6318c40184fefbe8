package internal

import (
	"testing"

	"github.com/markusressel/ecfan/internal/configuration"
	"github.com/markusressel/ecfan/internal/fans"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

const (
	readPath  = "/sys/kernel/debug/ec/ec0/io"
	writePath = "/sys/kernel/debug/ec/ec0/io_write"
)

func createConfig(name string) configuration.Configuration {
	return configuration.Configuration{
		Ec: configuration.EcConfig{
			ReadPath:  readPath,
			WritePath: writePath,
		},
		MaxTemp:       100,
		HistoryLength: 20,
		AvgWindowSize: 2,
		Fans: []configuration.FanConfig{
			{
				Name: name,
				Mode: configuration.ModeConfig{Register: 1, Manual: 13, Auto: 12},
				Read: []configuration.ChannelConfig{
					{Register: 2, Min: 0, Max: 100},
				},
				Write: []configuration.ChannelConfig{
					{Register: 3, Min: 0, Max: 200},
				},
				Temp: 4,
			},
		},
	}
}

func TestInitializeObjects(t *testing.T) {
	// GIVEN
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, readPath, make([]byte, 16), 0644))
	config := createConfig("init-test")

	// WHEN
	bank, fanList, err := InitializeObjects(fs, config)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 16, bank.Len())
	assert.Len(t, fanList, 1)
	assert.Equal(t, 20, fanList[0].HistoryLength())

	// a window of 2 samples only averages the last two temperatures
	image := make([]byte, 16)
	for _, value := range []byte{10, 20, 30} {
		image[4] = value
		assert.NoError(t, afero.WriteFile(fs, readPath, image, 0644))
		assert.NoError(t, bank.Refresh())
		_, err = fanList[0].TemperatureHistory()
		assert.NoError(t, err)
	}
	assert.Equal(t, 25.0, fanList[0].GetTemperatureAvg())

	fan, err := FindFan("init-test")
	assert.NoError(t, err)
	assert.Same(t, fanList[0], fan)
	fans.FanMap.Remove("init-test")
}

func TestInitializeObjects_MissingDevice(t *testing.T) {
	// GIVEN
	fs := afero.NewMemMapFs()
	config := createConfig("missing-device")

	// WHEN
	_, _, err := InitializeObjects(fs, config)

	// THEN
	assert.Error(t, err)
	_, err = FindFan("missing-device")
	assert.Error(t, err)
}

func TestInitializeObjects_InvalidFan(t *testing.T) {
	// GIVEN
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, readPath, make([]byte, 16), 0644))
	config := createConfig("invalid-fan")
	config.Fans[0].Mode.Manual = 12

	// WHEN
	_, _, err := InitializeObjects(fs, config)

	// THEN
	assert.ErrorContains(t, err, "invalid-fan")
}

func TestFindFan_Unknown(t *testing.T) {
	// WHEN
	_, err := FindFan("unknown")

	// THEN
	assert.Error(t, err)
}
