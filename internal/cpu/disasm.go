package cpu

import "fmt"

// Reader is the read side of Memory.
type Reader interface {
	Read8(addr uint16) uint8
}

// Disassemble returns a map of addresses and their corresponding instructions
// from 'from' to 'to' inclusive. Bytes that are not a supported opcode are
// rendered as ??? and skipped one at a time.
func Disassemble(mem Reader, from, to uint16) map[uint16]string {
	disasm := make(map[uint16]string)

	read16 := func(addr uint16) uint16 {
		return uint16(mem.Read8(addr)) | uint16(mem.Read8(addr+1))<<8
	}

	addr := uint32(from)
	for addr <= uint32(to) {
		pc := uint16(addr)
		opcode := mem.Read8(pc)
		instr := instructions[opcode]
		if instr.fn == nil {
			disasm[pc] = fmt.Sprintf("$%04X: ???", pc)
			addr++
			continue
		}

		pc++
		switch instr.mode {
		case addrModeIMM:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s #$%02X {%s}", addr, instr.name, mem.Read8(pc), instr.mode)
		case addrModeZP:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X {%s}", addr, instr.name, mem.Read8(pc), instr.mode)
		case addrModeZPX:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X,X {%s}", addr, instr.name, mem.Read8(pc), instr.mode)
		case addrModeZPY:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X,Y {%s}", addr, instr.name, mem.Read8(pc), instr.mode)
		case addrModeABS:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X {%s}", addr, instr.name, read16(pc), instr.mode)
		case addrModeABSX:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X,X {%s}", addr, instr.name, read16(pc), instr.mode)
		case addrModeABSY:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X,Y {%s}", addr, instr.name, read16(pc), instr.mode)
		case addrModeINDX:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s ($%02X,X) {%s}", addr, instr.name, mem.Read8(pc), instr.mode)
		case addrModeINDY:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s ($%02X),Y {%s}", addr, instr.name, mem.Read8(pc), instr.mode)
		}

		addr = addr + 1 + uint32(instr.mode.operandSize())
	}

	return disasm
}
