package fans

import (
	"fmt"
	"math"

	"github.com/markusressel/ecfan/internal/ec"
)

// Fan combines the mode register, the speed sensors, the speed actuators
// and the temperature sensor of a single EC controlled fan.
type Fan struct {
	Name string

	mode      *ec.ModeRegister
	readList  []*ec.BoundedRegister
	writeList []*ec.BoundedRegister
	temp      *ec.BoundedRegister

	historyLength      int
	temperatureHistory *channelHistory
	readHistory        []*channelHistory
}

func newFan(
	name string,
	mode *ec.ModeRegister,
	readList []*ec.BoundedRegister,
	writeList []*ec.BoundedRegister,
	temp *ec.BoundedRegister,
	avgWindowSize int,
) *Fan {
	readHistory := make([]*channelHistory, len(readList))
	for i := range readList {
		readHistory[i] = newChannelHistory(avgWindowSize)
	}

	return &Fan{
		Name:               name,
		mode:               mode,
		readList:           readList,
		writeList:          writeList,
		temp:               temp,
		historyLength:      DefaultHistoryLength,
		temperatureHistory: newChannelHistory(avgWindowSize),
		readHistory:        readHistory,
	}
}

func (fan *Fan) GetName() string {
	return fan.Name
}

func (fan *Fan) ModeRegister() *ec.ModeRegister {
	return fan.mode
}

func (fan *Fan) ReadRegisters() []*ec.BoundedRegister {
	return fan.readList
}

func (fan *Fan) WriteRegisters() []*ec.BoundedRegister {
	return fan.writeList
}

func (fan *Fan) TemperatureRegister() *ec.BoundedRegister {
	return fan.temp
}

// HistoryLength returns the maximum number of entries kept per history
func (fan *Fan) HistoryLength() int {
	return fan.historyLength
}

// SetHistoryLength changes the history capacity.
// Existing histories are only trimmed with the next sample.
func (fan *Fan) SetHistoryLength(length int) error {
	if length < 1 {
		return fmt.Errorf("fan %s: history length must be >= 1, was %d: %w", fan.Name, length, ec.ErrInvalidValue)
	}
	fan.historyLength = length
	return nil
}

// SetAvgWindowSize changes the number of samples the moving averages are calculated over
func (fan *Fan) SetAvgWindowSize(size int) error {
	if size < 1 {
		return fmt.Errorf("fan %s: average window size must be >= 1, was %d: %w", fan.Name, size, ec.ErrInvalidValue)
	}
	fan.temperatureHistory.resize(size, fan.historyLength)
	for _, history := range fan.readHistory {
		history.resize(size, fan.historyLength)
	}
	return nil
}

func (fan *Fan) SetMode(mode ec.ControlMode) error {
	return fan.mode.SetMode(mode)
}

func (fan *Fan) GetMode() (ec.ControlMode, error) {
	return fan.mode.GetMode()
}

// ReadTemperature returns the raw value of the temperature register
func (fan *Fan) ReadTemperature() (int, error) {
	return fan.temp.Read()
}

// ReadSpeeds returns the raw values of all speed sensor registers
func (fan *Fan) ReadSpeeds() ([]int, error) {
	speeds := make([]int, len(fan.readList))
	for i, register := range fan.readList {
		value, err := register.Read()
		if err != nil {
			return nil, err
		}
		speeds[i] = value
	}
	return speeds, nil
}

// SetSpeed switches the fan to manual mode and sets all speed actuators
// to the given fraction [0..1] of their respective domain.
func (fan *Fan) SetSpeed(speed float64) error {
	if math.IsNaN(speed) || speed < 0 || speed > 1 {
		return fmt.Errorf("fan %s: speed must be in [0..1], was %v: %w", fan.Name, speed, ec.ErrInvalidValue)
	}

	err := fan.mode.SetMode(ec.ControlModeManual)
	if err != nil {
		return err
	}

	normalized := int(speed * Resolution)
	for _, register := range fan.writeList {
		value := UnmapValue(normalized, register.Min, register.Max)
		if err := register.Write(value); err != nil {
			return err
		}
	}
	return nil
}

// TemperatureHistory samples the temperature register, appends the value to
// the temperature history and returns the history, oldest entry first.
func (fan *Fan) TemperatureHistory() ([]int, error) {
	temperature, err := fan.ReadTemperature()
	if err != nil {
		return nil, err
	}
	fan.temperatureHistory.append(temperature, fan.historyLength)
	return fan.temperatureHistory.get(), nil
}

// ReadHistory samples all speed sensor registers, appends the values to their
// histories and returns one history per sensor, oldest entry first.
func (fan *Fan) ReadHistory() ([][]int, error) {
	speeds, err := fan.ReadSpeeds()
	if err != nil {
		return nil, err
	}

	result := make([][]int, len(speeds))
	for i, speed := range speeds {
		fan.readHistory[i].append(speed, fan.historyLength)
		result[i] = fan.readHistory[i].get()
	}
	return result, nil
}

// ReadHistoryAt samples all speed sensors like ReadHistory and returns the history of sensor index
func (fan *Fan) ReadHistoryAt(index int) ([]int, error) {
	if err := fan.checkReadIndex(index); err != nil {
		return nil, err
	}
	histories, err := fan.ReadHistory()
	if err != nil {
		return nil, err
	}
	return histories[index], nil
}

func (fan *Fan) checkReadIndex(index int) error {
	if index < 0 || index >= len(fan.readList) {
		return fmt.Errorf("fan %s: sensor index %d not in [0, %d): %w", fan.Name, index, len(fan.readList), ec.ErrOutOfRange)
	}
	return nil
}

// PeekTemperatureHistory returns a copy of the temperature history without sampling
func (fan *Fan) PeekTemperatureHistory() []int {
	return fan.temperatureHistory.get()
}

// PeekReadHistory returns a copy of all speed sensor histories without sampling
func (fan *Fan) PeekReadHistory() [][]int {
	result := make([][]int, len(fan.readHistory))
	for i, history := range fan.readHistory {
		result[i] = history.get()
	}
	return result
}

// RestoreHistory replaces the current histories, f.ex. with a persisted snapshot
func (fan *Fan) RestoreHistory(temperature []int, reads [][]int) error {
	if len(reads) != len(fan.readHistory) {
		return fmt.Errorf("fan %s: history has %d sensors, expected %d: %w", fan.Name, len(reads), len(fan.readHistory), ec.ErrOutOfRange)
	}
	fan.temperatureHistory.restore(temperature, fan.historyLength)
	for i, values := range reads {
		fan.readHistory[i].restore(values, fan.historyLength)
	}
	return nil
}

// GetTemperatureAvg returns the moving average of the sampled temperature values
func (fan *Fan) GetTemperatureAvg() float64 {
	return fan.temperatureHistory.average()
}

// GetSpeedAvg returns the moving average of the sampled values of sensor index
func (fan *Fan) GetSpeedAvg(index int) (float64, error) {
	if err := fan.checkReadIndex(index); err != nil {
		return 0, err
	}
	return fan.readHistory[index].average(), nil
}
