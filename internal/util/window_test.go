package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGetWindowAvg(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(3)
	window.Append(10)
	window.Append(2)
	window.Append(3)
	window.Append(4)

	// WHEN
	avg := GetWindowAvg(window)

	// THEN
	assert.Equal(t, 3.0, avg)
}

func TestGetWindowAvg_Empty(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(3)

	// WHEN
	avg := GetWindowAvg(window)

	// THEN
	assert.Equal(t, 0.0, avg)
}
