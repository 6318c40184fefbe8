package ec

import (
	"bytes"
	"fmt"

	"github.com/markusressel/ecfan/internal/util"
	"github.com/spf13/afero"
)

const (
	DefaultDevicePath = "/sys/kernel/debug/ec/ec0/io"

	MinRegisterValue = 0
	MaxRegisterValue = 255
)

// RegisterBank is an in-memory mirror of the EC register space.
// Writes only modify the mirror until Commit is called.
type RegisterBank struct {
	fs        afero.Fs
	readPath  string
	writePath string
	registers []byte
}

// LoadRegisterBank reads the full register image from readPath.
// Commit writes the image back to writePath, which may differ from readPath.
func LoadRegisterBank(fs afero.Fs, readPath string, writePath string) (*RegisterBank, error) {
	bank := &RegisterBank{
		fs:        fs,
		readPath:  readPath,
		writePath: writePath,
	}
	if err := bank.Refresh(); err != nil {
		return nil, err
	}
	return bank, nil
}

func (b *RegisterBank) ReadPath() string {
	return b.readPath
}

func (b *RegisterBank) WritePath() string {
	return b.writePath
}

// Len returns the number of registers in the loaded image
func (b *RegisterBank) Len() int {
	return len(b.registers)
}

func (b *RegisterBank) checkAddress(address int) error {
	if address < 0 || address >= len(b.registers) {
		return fmt.Errorf("register address 0x%02X not in [0, %d): %w", address, len(b.registers), ErrOutOfRange)
	}
	return nil
}

// Read returns the mirrored value of the register at address
func (b *RegisterBank) Read(address int) (int, error) {
	if err := b.checkAddress(address); err != nil {
		return 0, err
	}
	return int(b.registers[address]), nil
}

// Write sets the mirrored value of the register at address.
// The change is not visible to the hardware until Commit is called.
func (b *RegisterBank) Write(address int, value int) error {
	if err := b.checkAddress(address); err != nil {
		return err
	}
	if value < MinRegisterValue || value > MaxRegisterValue {
		return fmt.Errorf("value %d for register 0x%02X does not fit into a byte: %w", value, address, ErrInvalidValue)
	}
	b.registers[address] = byte(value)
	return nil
}

// Commit writes the whole image to the write path in a single write.
// On failure the in-memory image is left untouched, so Commit can be retried.
func (b *RegisterBank) Commit() error {
	err := afero.WriteFile(b.fs, b.writePath, b.registers, 0644)
	if err != nil {
		return fmt.Errorf("unable to write register image to %s: %w", b.writePath, err)
	}
	return nil
}

// Refresh reloads the image from the read path, discarding uncommitted writes.
func (b *RegisterBank) Refresh() error {
	data, err := afero.ReadFile(b.fs, b.readPath)
	if err != nil {
		return fmt.Errorf("unable to read register image from %s: %w", b.readPath, err)
	}
	b.registers = data
	return nil
}

// Bytes returns a copy of the current in-memory image
func (b *RegisterBank) Bytes() []byte {
	return bytes.Clone(b.registers)
}

// Dump writes the current in-memory image to a regular file at path.
// The file is replaced atomically, so a partial dump is never observed.
func (b *RegisterBank) Dump(path string) error {
	return util.WriteFileAtomic(path, b.registers)
}
