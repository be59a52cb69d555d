package mem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nevisdale/m6502/internal/translate"
)

var f = translate.From

const (
	// Memory Map:
	//
	// $0000-$00FF: Zero page
	//   Addressed with a single operand byte by the zero page modes.
	//
	// $0100-$FFFB: General purpose memory
	//   Program code, data and the stack all live here. There is no
	//   mirroring and no device mapped into the address space.
	//
	// $FFFC-$FFFF: Reset vector location
	//   The first opcode is fetched from $FFFC after a reset.
	SizeBytes = 0x10000
)

var ErrImageTooLarge = errors.New(f("image does not fit in memory"))

// Memory is a flat 64 KiB address space. Every 16-bit address is valid,
// so there is no out of range access.
type Memory struct {
	data [SizeBytes]uint8
}

func New() *Memory {
	return &Memory{}
}

// Initialize sets every byte to zero.
func (m *Memory) Initialize() {
	clear(m.data[:])
}

func (m *Memory) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *Memory) Write8(addr uint16, data uint8) {
	m.data[addr] = data
}

// Read16 reads a little endian word: low byte at addr, high byte at addr+1.
// addr+1 wraps to $0000 at the top of memory.
func (m *Memory) Read16(addr uint16) uint16 {
	lo := uint16(m.data[addr])
	hi := uint16(m.data[addr+1])
	return lo | hi<<8
}

func (m *Memory) Write16(addr uint16, data uint16) {
	m.data[addr] = uint8(data & 0xff)
	m.data[addr+1] = uint8(data >> 8)
}

// Load copies data into memory starting at addr.
func (m *Memory) Load(addr uint16, data []uint8) error {
	if int(addr)+len(data) > SizeBytes {
		return fmt.Errorf("%w: %s", ErrImageTooLarge, f("%d bytes at $%04X", len(data), addr))
	}
	copy(m.data[addr:], data)
	return nil
}

// LoadImage reads a raw binary image from r and places it at org.
func (m *Memory) LoadImage(r io.Reader, org uint16) (int, error) {
	// read one byte more than fits to detect oversized images
	limit := int64(SizeBytes-int(org)) + 1
	data, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", f("couldn't read the image"), err)
	}
	if err := m.Load(org, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// LoadImageFile reads the raw binary image at path and places it at org.
func (m *Memory) LoadImageFile(path string, org uint16) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", f("couldn't open the file"), err)
	}
	defer file.Close()

	return m.LoadImage(file, org)
}
