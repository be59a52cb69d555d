package cpu

// Supported opcodes.
const (
	LDA_IMM  = 0xa9
	LDA_ZP   = 0xa5
	LDA_ZPX  = 0xb5
	LDA_ABS  = 0xad
	LDA_ABSX = 0xbd
	LDA_ABSY = 0xb9
	LDA_INDX = 0xa1
	LDA_INDY = 0xb1

	LDX_IMM  = 0xa2
	LDX_ZP   = 0xa6
	LDX_ZPY  = 0xb6
	LDX_ABS  = 0xae
	LDX_ABSY = 0xbe

	LDY_IMM  = 0xa0
	LDY_ZP   = 0xa4
	LDY_ZPX  = 0xb4
	LDY_ABS  = 0xac
	LDY_ABSX = 0xbc

	ORA_IMM = 0x09

	JSR_ABS = 0x20
)

type instr struct {
	name   string
	mode   addrMode
	fn     func(*CPU)
	cycles uint8 // including the opcode fetch, without page crossing
}

// opcode -> instruction mapping. Opcodes without fn are unsupported.
var instructions = [0x100]instr{
	LDA_IMM:  {name: "LDA", mode: addrModeIMM, fn: load(RegA), cycles: 2},
	LDA_ZP:   {name: "LDA", mode: addrModeZP, fn: load(RegA), cycles: 3},
	LDA_ZPX:  {name: "LDA", mode: addrModeZPX, fn: load(RegA), cycles: 4},
	LDA_ABS:  {name: "LDA", mode: addrModeABS, fn: load(RegA), cycles: 4},
	LDA_ABSX: {name: "LDA", mode: addrModeABSX, fn: load(RegA), cycles: 4},
	LDA_ABSY: {name: "LDA", mode: addrModeABSY, fn: load(RegA), cycles: 4},
	LDA_INDX: {name: "LDA", mode: addrModeINDX, fn: load(RegA), cycles: 6},
	LDA_INDY: {name: "LDA", mode: addrModeINDY, fn: load(RegA), cycles: 5},

	LDX_IMM:  {name: "LDX", mode: addrModeIMM, fn: load(RegX), cycles: 2},
	LDX_ZP:   {name: "LDX", mode: addrModeZP, fn: load(RegX), cycles: 3},
	LDX_ZPY:  {name: "LDX", mode: addrModeZPY, fn: load(RegX), cycles: 4},
	LDX_ABS:  {name: "LDX", mode: addrModeABS, fn: load(RegX), cycles: 4},
	LDX_ABSY: {name: "LDX", mode: addrModeABSY, fn: load(RegX), cycles: 4},

	LDY_IMM:  {name: "LDY", mode: addrModeIMM, fn: load(RegY), cycles: 2},
	LDY_ZP:   {name: "LDY", mode: addrModeZP, fn: load(RegY), cycles: 3},
	LDY_ZPX:  {name: "LDY", mode: addrModeZPX, fn: load(RegY), cycles: 4},
	LDY_ABS:  {name: "LDY", mode: addrModeABS, fn: load(RegY), cycles: 4},
	LDY_ABSX: {name: "LDY", mode: addrModeABSX, fn: load(RegY), cycles: 4},

	ORA_IMM: {name: "ORA", mode: addrModeIMM, fn: (*CPU).ora, cycles: 2},

	JSR_ABS: {name: "JSR", mode: addrModeABS, fn: (*CPU).jsr, cycles: 6},
}

// Instruction describes one entry of the opcode table.
type Instruction struct {
	Opcode uint8
	Name   string // mnemonic, e.g. LDA
	Mode   string // addressing mode, e.g. ZPX
	Cycles int    // base cycle count including the opcode fetch
}

// Key returns the mnemonic and addressing mode joined the way the
// opcode constants are named, e.g. LDA_ZPX.
func (i Instruction) Key() string {
	return i.Name + "_" + i.Mode
}

// Lookup returns the instruction for opcode.
func Lookup(opcode uint8) (Instruction, bool) {
	in := instructions[opcode]
	if in.fn == nil {
		return Instruction{}, false
	}
	return Instruction{
		Opcode: opcode,
		Name:   in.name,
		Mode:   string(in.mode),
		Cycles: int(in.cycles),
	}, true
}

// Opcodes returns every supported instruction ordered by opcode.
func Opcodes() []Instruction {
	var list []Instruction
	for opcode := range instructions {
		if in, ok := Lookup(uint8(opcode)); ok {
			list = append(list, in)
		}
	}
	return list
}

// Load Register
// R = M
//
// Flags affected: Z, N
//
// An additional cycle is needed if the page boundary is crossed.
func load(r Register) func(*CPU) {
	return func(c *CPU) {
		c.SetRegister(r, c.operandValue)
		c.setFlagsZN(c.operandValue)
		if c.pageCrossed {
			c.cycles++
		}
	}
}

// Logical Inclusive OR
// A = A | M
//
// Flags affected: Z, N
//
// An additional cycle is needed if the page boundary is crossed.
func (c *CPU) ora() {
	c.A |= c.operandValue
	c.setFlagsZN(c.A)
	if c.pageCrossed {
		c.cycles++
	}
}

// Jump to Subroutine
// push PC-1, PC = M
//
// Flags affected: none
func (c *CPU) jsr() {
	// PC already points past the operand,
	// the return address is the last byte of JSR
	c.stackPush16(c.PC - 1)
	c.PC = c.operandAddr
}
