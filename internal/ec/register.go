package ec

import (
	"fmt"
)

// Register is a view on a single address of a RegisterBank.
// It does not own the bank, it only references it.
type Register struct {
	Address int
	Bank    *RegisterBank
}

func NewRegister(address int, bank *RegisterBank) Register {
	return Register{
		Address: address,
		Bank:    bank,
	}
}

func (r Register) Read() (int, error) {
	return r.Bank.Read(r.Address)
}

func (r Register) Write(value int) error {
	return r.Bank.Write(r.Address, value)
}

type ControlMode int

const (
	// ControlModeAuto hands fan control to the embedded controller firmware
	ControlModeAuto ControlMode = iota
	// ControlModeManual enables fixed speed control by writing the fan registers
	ControlModeManual
)

func (m ControlMode) String() string {
	switch m {
	case ControlModeAuto:
		return "auto"
	case ControlModeManual:
		return "manual"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// ParseControlMode parses the textual representation of a ControlMode
func ParseControlMode(text string) (ControlMode, error) {
	switch text {
	case "auto":
		return ControlModeAuto, nil
	case "manual":
		return ControlModeManual, nil
	default:
		return ControlModeAuto, fmt.Errorf("unknown mode '%s', use one of: auto | manual: %w", text, ErrInvalidValue)
	}
}

// ModeRegister is a Register holding one of two distinct raw values,
// one for manual control and one for automatic control.
type ModeRegister struct {
	Register
	Manual int
	Auto   int
}

func NewModeRegister(address int, bank *RegisterBank, manual int, auto int) (*ModeRegister, error) {
	if manual == auto {
		return nil, fmt.Errorf("mode register 0x%02X: manual and auto value must differ, both are %d: %w", address, manual, ErrInvalidValue)
	}
	for _, value := range []int{manual, auto} {
		if value < MinRegisterValue || value > MaxRegisterValue {
			return nil, fmt.Errorf("mode register 0x%02X: value %d does not fit into a byte: %w", address, value, ErrInvalidValue)
		}
	}
	return &ModeRegister{
		Register: NewRegister(address, bank),
		Manual:   manual,
		Auto:     auto,
	}, nil
}

func (r *ModeRegister) SetMode(mode ControlMode) error {
	switch mode {
	case ControlModeManual:
		return r.Write(r.Manual)
	case ControlModeAuto:
		return r.Write(r.Auto)
	default:
		return fmt.Errorf("mode register 0x%02X: unsupported mode %v: %w", r.Address, mode, ErrInvalidValue)
	}
}

// GetMode classifies the raw register value by equality with the known mode values.
func (r *ModeRegister) GetMode() (ControlMode, error) {
	value, err := r.Read()
	if err != nil {
		return ControlModeAuto, err
	}
	switch value {
	case r.Manual:
		return ControlModeManual, nil
	case r.Auto:
		return ControlModeAuto, nil
	default:
		return ControlModeAuto, fmt.Errorf("mode register 0x%02X: raw value %d is neither manual (%d) nor auto (%d): %w", r.Address, value, r.Manual, r.Auto, ErrInvalidState)
	}
}

// BoundedRegister is a Register whose raw value represents a quantity in [Min, Max]
type BoundedRegister struct {
	Register
	Min int
	Max int
}

func NewBoundedRegister(address int, bank *RegisterBank, min int, max int) (*BoundedRegister, error) {
	if min >= max {
		return nil, fmt.Errorf("register 0x%02X: min (%d) must be lower than max (%d): %w", address, min, max, ErrInvalidValue)
	}
	return &BoundedRegister{
		Register: NewRegister(address, bank),
		Min:      min,
		Max:      max,
	}, nil
}
