package util

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Coerce returns value limited to [min, max]
func Coerce[T constraints.Ordered](value T, min T, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// CeilDiv returns ceil(a / b) for positive integers
func CeilDiv(a int, b int) int {
	return (a + b - 1) / b
}

// ParseInt parses decimal as well as "0x" prefixed hex numbers
func ParseInt(text string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse '%s' as number: %w", text, err)
	}
	return int(value), nil
}

// HexString formats value as a two digit hex number
func HexString(value int) string {
	return fmt.Sprintf("0x%02X", value)
}

// FloorDiv divides a by b rounding towards negative infinity, b must be > 0
func FloorDiv(a int, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
