package ec

import "errors"

var (
	// ErrOutOfRange is returned when an address or index lies outside the loaded register bank
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidValue is returned for values that cannot be represented by the target register
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidState is returned when a register holds a raw value without known meaning
	ErrInvalidState = errors.New("invalid state")
)
