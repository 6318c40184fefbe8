package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubCommandOutput(t *testing.T, output string, err error) {
	original := commandOutput
	commandOutput = func(name string, args ...string) ([]byte, error) {
		return []byte(output), err
	}
	t.Cleanup(func() {
		commandOutput = original
	})
}

func TestLookupUserId(t *testing.T) {
	// GIVEN
	stubCommandOutput(t, "1000\n", nil)

	// WHEN
	userId, err := lookupUserId("markus")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "1000", userId)
}

func TestLookupUserId_EmptyOutput(t *testing.T) {
	// GIVEN
	stubCommandOutput(t, "  \n", nil)

	// WHEN
	userId, err := lookupUserId("markus")

	// THEN
	assert.ErrorContains(t, err, "empty output")
	assert.Empty(t, userId)
}

func TestLookupUserId_CommandFails(t *testing.T) {
	// GIVEN
	stubCommandOutput(t, "", errors.New("exit status 1"))

	// WHEN
	_, err := lookupUserId("markus")

	// THEN
	assert.EqualError(t, err, "exit status 1")
}
