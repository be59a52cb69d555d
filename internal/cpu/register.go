package cpu

import "fmt"

// Register selects one of the 8-bit data registers.
type Register uint8

const (
	RegA Register = iota
	RegX
	RegY
)

func (r Register) String() string {
	switch r {
	case RegA:
		return "A"
	case RegX:
		return "X"
	case RegY:
		return "Y"
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

// Register returns the value of r. Unknown registers read as zero.
func (c CPU) Register(r Register) uint8 {
	switch r {
	case RegA:
		return c.A
	case RegX:
		return c.X
	case RegY:
		return c.Y
	}
	return 0
}

// SetRegister stores v into r. Unknown registers are ignored.
func (c *CPU) SetRegister(r Register, v uint8) {
	switch r {
	case RegA:
		c.A = v
	case RegX:
		c.X = v
	case RegY:
		c.Y = v
	}
}
