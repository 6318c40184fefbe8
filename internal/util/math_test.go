package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCoerce(t *testing.T) {
	assert.Equal(t, 0, Coerce(-5, 0, 50))
	assert.Equal(t, 50, Coerce(75, 0, 50))
	assert.Equal(t, 25, Coerce(25, 0, 50))
	assert.Equal(t, 0.5, Coerce(0.5, 0.0, 1.0))
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 7, CeilDiv(50, 8))
	assert.Equal(t, 6, CeilDiv(48, 8))
	assert.Equal(t, 1, CeilDiv(1, 8))
}

func TestParseInt(t *testing.T) {
	// GIVEN
	expectedInputOutput := map[string]int{
		"47":   47,
		"0x2f": 47,
		"0x2F": 47,
		" 10 ": 10,
		"0":    0,
	}

	for input, output := range expectedInputOutput {
		// WHEN
		result, err := ParseInt(input)

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, output, result)
	}
}

func TestParseInt_Invalid(t *testing.T) {
	// WHEN
	_, err := ParseInt("zz")

	// THEN
	assert.Error(t, err)
}

func TestHexString(t *testing.T) {
	assert.Equal(t, "0x2F", HexString(47))
	assert.Equal(t, "0x00", HexString(0))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 2, FloorDiv(5, 2))
	assert.Equal(t, -3, FloorDiv(-5, 2))
	assert.Equal(t, -2, FloorDiv(-4, 2))
	assert.Equal(t, 0, FloorDiv(0, 7))
}
