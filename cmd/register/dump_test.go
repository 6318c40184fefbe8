package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpHeaders(t *testing.T) {
	// WHEN
	headers := dumpHeaders()

	// THEN
	assert.Len(t, headers, bytesPerRow+1)
	assert.Equal(t, "F", headers[bytesPerRow])
}

func TestDumpRows(t *testing.T) {
	// GIVEN
	image := make([]byte, 20)
	image[0] = 0x2f
	image[17] = 0xff

	// WHEN
	rows := dumpRows(image)

	// THEN
	assert.Len(t, rows, 2)
	assert.Equal(t, "0x00", rows[0][0])
	assert.Equal(t, "2f", rows[0][1])
	assert.Len(t, rows[0], bytesPerRow+1)
	assert.Equal(t, "0x10", rows[1][0])
	assert.Equal(t, "ff", rows[1][2])
	assert.Len(t, rows[1], 5)
}
