package view

import (
	"fmt"
	"strings"

	"github.com/markusressel/ecfan/internal/fans"
	"github.com/markusressel/ecfan/internal/sparkline"
	"github.com/mgutz/ansi"
)

// Style selects how histories are drawn
type Style string

const (
	StyleBlocks Style = "blocks"
	StyleLine   Style = "line"

	lineChartHeight = 8
)

type ViewController struct {
	fans  []*fans.Fan
	style Style
	color bool
}

func NewViewController(fanList []*fans.Fan, style Style, color bool) *ViewController {
	return &ViewController{
		fans:  fanList,
		style: style,
		color: color,
	}
}

// Render samples and draws all fans, separated by an empty line
func (v *ViewController) Render() (string, error) {
	var sb strings.Builder
	for i, fan := range v.fans {
		if i > 0 {
			sb.WriteString("\n")
		}
		representation, err := v.FanRepresentation(fan)
		if err != nil {
			return "", err
		}
		sb.WriteString(representation)
	}
	return sb.String(), nil
}

// FanRepresentation samples the temperature and all speed sensors of fan once
// and draws their histories, temperature first.
func (v *ViewController) FanRepresentation(fan *fans.Fan) (string, error) {
	temperatureHistory, err := fan.TemperatureHistory()
	if err != nil {
		return "", err
	}
	readHistory, err := fan.ReadHistory()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(v.title(fan.GetName()) + "\n")
	sb.WriteString("temperature:\n")
	temp := fan.TemperatureRegister()
	sb.WriteString(v.chart(temperatureHistory, temp.Min, temp.Max, "°C") + "\n")

	for i, register := range fan.ReadRegisters() {
		sb.WriteString(fmt.Sprintf("fan %d:\n", i+1))
		sb.WriteString(v.chart(readHistory[i], register.Min, register.Max, "speed") + "\n")
	}
	return sb.String(), nil
}

func (v *ViewController) chart(history []int, min int, max int, caption string) string {
	switch v.style {
	case StyleLine:
		return sparkline.RenderLine(history, min, max, lineChartHeight, caption)
	default:
		return sparkline.Render(history, min, max, fans.Resolution)
	}
}

func (v *ViewController) title(name string) string {
	if !v.color {
		return name
	}
	return ansi.Color(name, "white+b")
}

// ParseStyle parses the textual representation of a Style
func ParseStyle(text string) (Style, error) {
	switch Style(text) {
	case StyleBlocks, StyleLine:
		return Style(text), nil
	default:
		return StyleBlocks, fmt.Errorf("unknown chart style '%s', use one of: %s | %s", text, StyleBlocks, StyleLine)
	}
}
