package cpu

// Memory is the address space the CPU runs against.
type Memory interface {
	Initialize()
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
	Read16(addr uint16) uint16
	Write16(addr uint16, data uint16)
}

const (
	// The first opcode is fetched from here after a reset.
	resetVectorAddr = uint16(0xfffc)
	stackResetAddr  = uint16(0x00ff)
)

type Flag uint8

const (
	FlagC Flag = 1 << iota // Carry
	FlagZ                  // Zero
	FlagI                  // Interrupt Disable
	FlagD                  // Decimal Mode
	FlagB                  // Break Command
	flagU                  // Unused
	FlagV                  // Overflow
	FlagN                  // Negative
)

// Status holds the processor status flags, one bit per Flag.
type Status uint8

func (s Status) Has(flag Flag) bool {
	return uint8(s)&uint8(flag) > 0
}

func (s *Status) Set(flag Flag, v bool) {
	if v {
		*s |= Status(flag)
		return
	}
	*s &= ^Status(flag)
}

// String renders the flags as NV-BDIZC, upper case when set.
func (s Status) String() string {
	const (
		set   = "NV-BDIZC"
		unset = "nv-bdizc"
	)
	out := []byte(unset)
	for i := 0; i < 8; i++ {
		flag := Flag(1 << (7 - i))
		if flag != flagU && s.Has(flag) {
			out[i] = set[i]
		}
	}
	return string(out)
}

type CPU struct {
	PC uint16 // program counter
	SP uint16 // stack pointer
	A  uint8  // accumulator
	X  uint8  // index register X
	Y  uint8  // index register Y
	P  Status // processor status

	mem          Memory
	cycles       uint8    // extra cycles taken by the current instruction
	totalCycles  uint64   // cycles spent since the last reset
	addrMode     addrMode // current address mode
	operandAddr  uint16   // effective address of the operand
	operandValue uint8    // value of the operand
	pageCrossed  bool     // indexing crossed a page boundary
}

func New() *CPU {
	return &CPU{}
}

func (c CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

// readZP16 reads a pointer from the zero page. The high byte wraps
// to $00 instead of leaving the page.
func (c CPU) readZP16(addr uint8) uint16 {
	return uint16(c.read8(uint16(addr))) | uint16(c.read8(uint16(addr+1)))<<8
}

func (c *CPU) setFlagsZN(value uint8) {
	c.P.Set(FlagZ, value == 0)
	c.P.Set(FlagN, value&0x80 > 0)
}

// stackPush16 writes a word at the address held by SP and
// moves SP past it.
func (c *CPU) stackPush16(data uint16) {
	c.mem.Write16(c.SP, data)
	c.SP += 2
}

// TotalCycles returns the number of cycles spent since the last reset.
func (c CPU) TotalCycles() uint64 {
	return c.totalCycles
}

// Reset the CPU to its initial state and zero the memory.
func (c *CPU) Reset(mem Memory) {
	c.PC = resetVectorAddr
	c.SP = stackResetAddr
	c.A = 0
	c.X = 0
	c.Y = 0
	c.P = 0
	c.mem = mem
	c.totalCycles = 0
	c.clearOperand()
	mem.Initialize()
}

func (c *CPU) clearOperand() {
	c.cycles = 0
	c.addrMode = ""
	c.operandAddr = 0
	c.operandValue = 0
	c.pageCrossed = false
}

// Execute runs instructions until at least cycles cycles have been spent
// and returns the number of cycles actually used. An instruction that has
// started always completes, so the result can exceed the budget.
//
// An unsupported opcode stops execution with an error wrapping
// ErrUnsupportedOpcode; the returned count then includes the fetch of
// the offending opcode.
func (c *CPU) Execute(cycles int, mem Memory) (int, error) {
	requested := cycles
	for cycles > 0 {
		n, err := c.Step(mem)
		cycles -= n
		if err != nil {
			return requested - cycles, err
		}
	}
	return requested - cycles, nil
}

// Step executes one instruction and returns the cycles it took.
func (c *CPU) Step(mem Memory) (int, error) {
	c.mem = mem
	defer c.clearOperand()

	addr := c.PC
	opcode := c.read8(c.PC)
	c.PC++
	instr := instructions[opcode]
	if instr.fn == nil {
		c.totalCycles++
		return 1, &OpcodeError{Opcode: opcode, Addr: addr}
	}

	if err := c.fetch(instr.mode); err != nil {
		c.totalCycles++
		return 1, err
	}
	instr.fn(c)

	n := int(instr.cycles) + int(c.cycles)
	c.totalCycles += uint64(n)
	return n, nil
}
