package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/markusressel/ecfan/internal/ec"
	"github.com/markusressel/ecfan/internal/fans"
	"github.com/markusressel/ecfan/internal/ui"
	"github.com/qdm12/reprint"
)

var ErrFanNotFound = errors.New("fan not found")

// ChannelState is the last sampled state of a bounded register
type ChannelState struct {
	Register int     `json:"register"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	Value    int     `json:"value"`
	Avg      float64 `json:"avg"`
	History  []int   `json:"history"`
}

// FanState is the last sampled state of a fan
type FanState struct {
	Name        string         `json:"name"`
	Mode        string         `json:"mode"`
	Temperature ChannelState   `json:"temperature"`
	Speeds      []ChannelState `json:"speeds"`
}

// Sampler samples the history of all fans, f.ex. while drawing them
type Sampler func(fanList []*fans.Fan) error

// Controller owns the register bank and all fans bound to it.
// The bank is not safe for concurrent use, so every access is serialized here.
type Controller struct {
	mu          sync.Mutex
	bank        *ec.RegisterBank
	fans        []*fans.Fan
	pollingRate time.Duration
	sampler     Sampler

	originalModes map[string]ec.ControlMode
	state         []FanState
}

func NewController(bank *ec.RegisterBank, fanList []*fans.Fan, pollingRate time.Duration) *Controller {
	c := &Controller{
		bank:          bank,
		fans:          fanList,
		pollingRate:   pollingRate,
		sampler:       SampleHistory,
		originalModes: map[string]ec.ControlMode{},
	}
	// every configured fan is reported from the start, with the histories it has so far
	c.state = c.buildState()
	return c
}

// SetSampler replaces the function used to sample the fan histories on each tick
func (c *Controller) SetSampler(sampler Sampler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sampler = sampler
}

// SampleHistory appends the current temperature and speed values of each fan to its history
func SampleHistory(fanList []*fans.Fan) error {
	for _, fan := range fanList {
		if _, err := fan.TemperatureHistory(); err != nil {
			return err
		}
		if _, err := fan.ReadHistory(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) Run(ctx context.Context) error {
	c.storeOriginalModes()

	ui.Info("Starting polling loop for %d fan(s) every %v", len(c.fans), c.pollingRate)
	tick := time.NewTicker(c.pollingRate)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if err := c.Tick(); err != nil {
				ui.Warning("Error polling embedded controller: %v", err)
			}
		}
	}
}

// Tick reloads the register bank and samples the history of all fans
func (c *Controller) Tick() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.bank.Refresh(); err != nil {
		return err
	}
	if err := c.sampler(c.fans); err != nil {
		return err
	}
	c.state = c.buildState()
	return nil
}

func (c *Controller) storeOriginalModes() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, fan := range c.fans {
		mode, err := fan.GetMode()
		if err != nil {
			ui.Warning("Cannot read mode of %s: %v", fan.GetName(), err)
			continue
		}
		c.originalModes[fan.GetName()] = mode
	}
}

// RestoreModes writes back the mode each fan had when Run was started
// and commits the register bank.
func (c *Controller) RestoreModes() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.originalModes) <= 0 {
		return nil
	}
	if err := c.bank.Refresh(); err != nil {
		return err
	}
	for _, fan := range c.fans {
		mode, ok := c.originalModes[fan.GetName()]
		if !ok {
			continue
		}
		ui.Info("Restoring %s mode of %s", mode, fan.GetName())
		if err := fan.SetMode(mode); err != nil {
			return err
		}
	}
	return c.bank.Commit()
}

func (c *Controller) buildState() []FanState {
	result := make([]FanState, len(c.fans))
	for i, fan := range c.fans {
		mode := "invalid"
		if m, err := fan.GetMode(); err == nil {
			mode = m.String()
		}

		temp := fan.TemperatureRegister()
		temperatureHistory := fan.PeekTemperatureHistory()
		state := FanState{
			Name: fan.GetName(),
			Mode: mode,
			Temperature: ChannelState{
				Register: temp.Address,
				Min:      temp.Min,
				Max:      temp.Max,
				Value:    last(temperatureHistory),
				Avg:      fan.GetTemperatureAvg(),
				History:  temperatureHistory,
			},
		}

		readHistory := fan.PeekReadHistory()
		for j, register := range fan.ReadRegisters() {
			avg, _ := fan.GetSpeedAvg(j)
			state.Speeds = append(state.Speeds, ChannelState{
				Register: register.Address,
				Min:      register.Min,
				Max:      register.Max,
				Value:    last(readHistory[j]),
				Avg:      avg,
				History:  readHistory[j],
			})
		}
		result[i] = state
	}
	return result
}

func last(values []int) int {
	if len(values) <= 0 {
		return 0
	}
	return values[len(values)-1]
}

// State returns a copy of the state of all fans as of the last tick
func (c *Controller) State() []FanState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.state) <= 0 {
		return []FanState{}
	}
	return reprint.This(c.state).([]FanState)
}

// FanState returns a copy of the state of the fan with the given name as of the last tick
func (c *Controller) FanState(name string) (FanState, error) {
	for _, state := range c.State() {
		if state.Name == name {
			return state, nil
		}
	}
	return FanState{}, fmt.Errorf("%s: %w", name, ErrFanNotFound)
}

// Fans returns the fans owned by this controller
func (c *Controller) Fans() []*fans.Fan {
	return c.fans
}

// Update runs fn with exclusive access to the fan with the given name and commits
// the register bank afterwards. Uncommitted changes are discarded if fn fails.
func (c *Controller) Update(name string, fn func(fan *fans.Fan) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var target *fans.Fan
	for _, fan := range c.fans {
		if fan.GetName() == name {
			target = fan
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%s: %w", name, ErrFanNotFound)
	}

	if err := c.bank.Refresh(); err != nil {
		return err
	}
	if err := fn(target); err != nil {
		if refreshErr := c.bank.Refresh(); refreshErr != nil {
			ui.Warning("Unable to discard uncommitted changes: %v", refreshErr)
		}
		return err
	}
	if err := c.bank.Commit(); err != nil {
		return err
	}
	c.state = c.buildState()
	return nil
}
