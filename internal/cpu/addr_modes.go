package cpu

import "fmt"

type addrMode string

const (
	// Immediate: IMM
	//
	// The operand is the byte following the opcode.
	// For example, LDA #$10 loads the accumulator (A) with $10.
	//
	// Format: #$nn
	addrModeIMM addrMode = "IMM"

	// Zero Page: ZP
	//
	// The operand byte is an address within the first 256 bytes of memory.
	// For example, LDA $20 loads the accumulator (A) from the address $0020.
	//
	// Format: $nn
	addrModeZP addrMode = "ZP"

	// Zero Page Indexed with X: ZPX
	//
	// The operand byte plus X is an address within the zero page.
	// The sum wraps around inside the page: $80,X with X = $FF is $007F, not $017F.
	//
	// Format: $nn,X
	addrModeZPX addrMode = "ZPX"

	// Zero Page Indexed with Y: ZPY
	//
	// Same as ZPX with the Y register. Only LDX and STX use it.
	//
	// Format: $nn,Y
	addrModeZPY addrMode = "ZPY"

	// Absolute: ABS
	//
	// The two operand bytes, low byte first, form a full 16-bit address.
	// For example, LDA $1234 loads the accumulator (A) from address $1234.
	//
	// Format: $nnnn
	addrModeABS addrMode = "ABS"

	// Absolute Indexed with X: ABSX
	//
	// The 16-bit operand plus X. Reading instructions take an additional
	// cycle when adding X carries out of the low byte of the address.
	//
	// Format: $nnnn,X
	addrModeABSX addrMode = "ABSX"

	// Absolute Indexed with Y: ABSY
	//
	// Same as ABSX with the Y register.
	//
	// Format: $nnnn,Y
	addrModeABSY addrMode = "ABSY"

	// Indexed Indirect (X): INDX
	//
	// The operand byte plus X, wrapped to the zero page, points at the
	// 16-bit address of the operand.
	// For example, LDA ($20,X) with X = $04 loads A from the address stored at $0024.
	//
	// Format: ($nn,X)
	addrModeINDX addrMode = "INDX"

	// Indirect Indexed (Y): INDY
	//
	// The operand byte points at a 16-bit base address in the zero page;
	// Y is added to that base. Reading instructions take an additional
	// cycle when adding Y crosses a page boundary.
	// For example, LDA ($20),Y loads A from the address stored at $0020 plus Y.
	//
	// Format: ($nn),Y
	addrModeINDY addrMode = "INDY"
)

// operandSize returns the number of operand bytes following the opcode.
func (mode addrMode) operandSize() uint16 {
	switch mode {
	case addrModeABS, addrModeABSX, addrModeABSY:
		return 2
	}
	return 1
}

// isPageCrossed reports whether adding index to base carries out of the
// low byte, i.e. the indexed address lands in the next page.
// It must be checked against the base before indexing.
func isPageCrossed(base uint16, index uint8) bool {
	return base&0xff+uint16(index) > 0xff
}

// fetch resolves the operand of the current instruction, advancing PC
// past the operand bytes.
func (c *CPU) fetch(mode addrMode) error {
	c.addrMode = mode
	c.pageCrossed = false
	c.operandAddr = 0
	c.operandValue = 0

	switch mode {
	case addrModeIMM:
		c.operandAddr = c.PC
		c.PC++

	case addrModeZP:
		c.operandAddr = uint16(c.read8(c.PC))
		c.PC++

	case addrModeZPX:
		c.operandAddr = uint16(c.read8(c.PC) + c.X)
		c.PC++

	case addrModeZPY:
		c.operandAddr = uint16(c.read8(c.PC) + c.Y)
		c.PC++

	case addrModeABS:
		c.operandAddr = c.read16(c.PC)
		c.PC += 2

	case addrModeABSX:
		baseAddr := c.read16(c.PC)
		c.PC += 2
		c.operandAddr = baseAddr + uint16(c.X)
		c.pageCrossed = isPageCrossed(baseAddr, c.X)

	case addrModeABSY:
		baseAddr := c.read16(c.PC)
		c.PC += 2
		c.operandAddr = baseAddr + uint16(c.Y)
		c.pageCrossed = isPageCrossed(baseAddr, c.Y)

	case addrModeINDX:
		ptr := c.read8(c.PC) + c.X
		c.PC++
		c.operandAddr = c.readZP16(ptr)

	case addrModeINDY:
		ptr := c.read8(c.PC)
		c.PC++
		baseAddr := c.readZP16(ptr)
		c.operandAddr = baseAddr + uint16(c.Y)
		c.pageCrossed = isPageCrossed(baseAddr, c.Y)

	default:
		return fmt.Errorf("%w: %q", ErrAddrMode, string(mode))
	}

	c.operandValue = c.read8(c.operandAddr)
	return nil
}
