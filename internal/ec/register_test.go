package ec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister_ReadWriteDelegatesToBank(t *testing.T) {
	// GIVEN
	_, bank := createBank(t, make([]byte, 16))
	register := NewRegister(0x0a, bank)

	// WHEN
	err := register.Write(123)

	// THEN
	assert.NoError(t, err)
	value, err := bank.Read(0x0a)
	assert.NoError(t, err)
	assert.Equal(t, 123, value)
	value, err = register.Read()
	assert.NoError(t, err)
	assert.Equal(t, 123, value)
}

func TestRegister_OutOfRange(t *testing.T) {
	// GIVEN
	_, bank := createBank(t, make([]byte, 16))
	register := NewRegister(0x10, bank)

	// WHEN
	_, err := register.Read()

	// THEN
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewModeRegister_EqualValues(t *testing.T) {
	// GIVEN
	_, bank := createBank(t, make([]byte, 16))

	// WHEN
	register, err := NewModeRegister(1, bank, 20, 20)

	// THEN
	assert.Nil(t, register)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestModeRegister_SetMode(t *testing.T) {
	// GIVEN
	_, bank := createBank(t, make([]byte, 16))
	register, err := NewModeRegister(1, bank, 20, 4)
	assert.NoError(t, err)

	// WHEN
	err = register.SetMode(ControlModeManual)

	// THEN
	assert.NoError(t, err)
	value, _ := bank.Read(1)
	assert.Equal(t, 20, value)

	// WHEN
	err = register.SetMode(ControlModeAuto)

	// THEN
	assert.NoError(t, err)
	value, _ = bank.Read(1)
	assert.Equal(t, 4, value)
}

func TestModeRegister_SetUnknownMode(t *testing.T) {
	// GIVEN
	_, bank := createBank(t, make([]byte, 16))
	register, _ := NewModeRegister(1, bank, 20, 4)

	// WHEN
	err := register.SetMode(ControlMode(7))

	// THEN
	assert.ErrorIs(t, err, ErrInvalidValue)
	value, _ := bank.Read(1)
	assert.Equal(t, 0, value)
}

func TestModeRegister_GetMode(t *testing.T) {
	// GIVEN
	_, bank := createBank(t, make([]byte, 16))
	register, _ := NewModeRegister(1, bank, 20, 4)

	for raw := 0; raw <= MaxRegisterValue; raw++ {
		_ = bank.Write(1, raw)

		// WHEN
		mode, err := register.GetMode()

		// THEN
		switch raw {
		case 20:
			assert.NoError(t, err)
			assert.Equal(t, ControlModeManual, mode)
		case 4:
			assert.NoError(t, err)
			assert.Equal(t, ControlModeAuto, mode)
		default:
			assert.ErrorIs(t, err, ErrInvalidState)
		}
	}
}

func TestParseControlMode(t *testing.T) {
	mode, err := ParseControlMode("manual")
	assert.NoError(t, err)
	assert.Equal(t, ControlModeManual, mode)

	mode, err = ParseControlMode("auto")
	assert.NoError(t, err)
	assert.Equal(t, ControlModeAuto, mode)

	_, err = ParseControlMode("pwm")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestNewBoundedRegister(t *testing.T) {
	// GIVEN
	_, bank := createBank(t, make([]byte, 16))

	// WHEN
	valid, validErr := NewBoundedRegister(2, bank, 0, 100)
	equal, equalErr := NewBoundedRegister(2, bank, 50, 50)
	inverted, invertedErr := NewBoundedRegister(2, bank, 100, 0)

	// THEN
	assert.NoError(t, validErr)
	assert.Equal(t, 0, valid.Min)
	assert.Equal(t, 100, valid.Max)
	assert.Nil(t, equal)
	assert.ErrorIs(t, equalErr, ErrInvalidValue)
	assert.Nil(t, inverted)
	assert.ErrorIs(t, invertedErr, ErrInvalidValue)
}
