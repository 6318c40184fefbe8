package view

import (
	"strings"
	"testing"

	"github.com/markusressel/ecfan/internal/configuration"
	"github.com/markusressel/ecfan/internal/ec"
	"github.com/markusressel/ecfan/internal/fans"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

const devicePath = "/sys/kernel/debug/ec/ec0/io"

func createFan(t *testing.T) (*fans.Fan, *ec.RegisterBank) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, devicePath, make([]byte, 16), 0644))
	bank, err := ec.LoadRegisterBank(fs, devicePath, devicePath)
	assert.NoError(t, err)

	fan, err := fans.NewFan(configuration.FanConfig{
		Name: "cpu",
		Mode: configuration.ModeConfig{Register: 0, Manual: 1, Auto: 0},
		Read: []configuration.ChannelConfig{
			{Register: 1, Min: 0, Max: 100},
			{Register: 2, Min: 0, Max: 100},
		},
		Write: []configuration.ChannelConfig{
			{Register: 3, Min: 0, Max: 100},
		},
		Temp: 4,
	}, bank, 100)
	assert.NoError(t, err)
	return fan, bank
}

func TestFanRepresentation(t *testing.T) {
	// GIVEN
	fan, bank := createFan(t)
	_ = bank.Write(4, 100)
	_ = bank.Write(1, 50)
	controller := NewViewController([]*fans.Fan{fan}, StyleBlocks, false)

	// WHEN
	result, err := controller.FanRepresentation(fan)

	// THEN
	assert.NoError(t, err)
	expected := "cpu\n" +
		"temperature:\n" +
		"▂\n█\n█\n█\n█\n█\n█\n" + "\n" +
		"fan 1:\n" +
		" \n \n \n▁\n█\n█\n█\n" + "\n" +
		"fan 2:\n" +
		" \n \n \n \n \n \n \n" + "\n"
	assert.Equal(t, expected, result)
}

func TestFanRepresentation_SamplesOncePerCall(t *testing.T) {
	// GIVEN
	fan, _ := createFan(t)
	controller := NewViewController([]*fans.Fan{fan}, StyleBlocks, false)

	// WHEN
	_, _ = controller.FanRepresentation(fan)
	_, _ = controller.FanRepresentation(fan)

	// THEN
	assert.Len(t, fan.PeekTemperatureHistory(), 2)
	assert.Len(t, fan.PeekReadHistory()[0], 2)
	assert.Len(t, fan.PeekReadHistory()[1], 2)
}

func TestRender_MultipleFans(t *testing.T) {
	// GIVEN
	fan1, _ := createFan(t)
	fan2, _ := createFan(t)
	fan2.Name = "gpu"
	controller := NewViewController([]*fans.Fan{fan1, fan2}, StyleLine, false)

	// WHEN
	result, err := controller.Render()

	// THEN
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(result, "cpu\n"))
	assert.Contains(t, result, "\ngpu\n")
}

func TestParseStyle(t *testing.T) {
	style, err := ParseStyle("line")
	assert.NoError(t, err)
	assert.Equal(t, StyleLine, style)

	style, err = ParseStyle("blocks")
	assert.NoError(t, err)
	assert.Equal(t, StyleBlocks, style)

	_, err = ParseStyle("bars")
	assert.Error(t, err)
}
