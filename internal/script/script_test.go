package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nevisdale/m6502/internal/cpu"
	"github.com/nevisdale/m6502/internal/mem"
)

func newMachine() (*mem.Memory, *cpu.CPU) {
	m := mem.New()
	c := cpu.New()
	c.Reset(m)
	return m, c
}

func Test_Run(t *testing.T) {
	t.Run("install program and data", func(t *testing.T) {
		m, c := newMachine()
		src := `
store(0xfffc, [op["LDA_INDY"], 0x02])
poke16(0x0002, 0x8000)
poke(0x8004, 0x37)
set_reg("y", 4)
`
		require.NoError(t, Run("setup.star", src, m, c))

		cycles, err := c.Execute(5, m)

		require.NoError(t, err)
		assert.Equal(t, 5, cycles)
		assert.Equal(t, uint8(0x37), c.A, "A register")
	})

	t.Run("peek and reg", func(t *testing.T) {
		m, c := newMachine()
		m.Write16(0x1000, 0xbeef)
		c.X = 0x12
		src := `
poke(0x2000, peek(0x1000))
poke16(0x2002, peek16(0x1000))
set_reg("a", reg("x") + 1)
set_reg("pc", 0x0200)
set_reg("sp", 0x01ff)
`
		require.NoError(t, Run("peek.star", src, m, c))

		assert.Equal(t, uint8(0xef), m.Read8(0x2000))
		assert.Equal(t, uint16(0xbeef), m.Read16(0x2002))
		assert.Equal(t, uint8(0x13), c.A, "A register")
		assert.Equal(t, uint16(0x0200), c.PC, "PC")
		assert.Equal(t, uint16(0x01ff), c.SP, "SP")
	})

	t.Run("opcode dict", func(t *testing.T) {
		m, c := newMachine()
		src := `
poke(0, op["JSR_ABS"])
poke(1, op["ORA_IMM"])
poke(2, len(op))
`
		require.NoError(t, Run("op.star", src, m, c))

		assert.Equal(t, uint8(cpu.JSR_ABS), m.Read8(0))
		assert.Equal(t, uint8(cpu.ORA_IMM), m.Read8(1))
		assert.Equal(t, uint8(len(cpu.Opcodes())), m.Read8(2))
	})

	t.Run("opcode dict is frozen", func(t *testing.T) {
		m, c := newMachine()

		err := Run("frozen.star", `op["NOP"] = 0xea`, m, c)

		assert.Error(t, err)
	})

	t.Run("byte out of range", func(t *testing.T) {
		m, c := newMachine()

		err := Run("range.star", `poke(0x10, 0x100)`, m, c)

		assert.ErrorIs(t, err, ErrRange)
		var scriptErr *Error
		require.ErrorAs(t, err, &scriptErr)
		assert.Equal(t, "range.star", scriptErr.Name)
		assert.Equal(t, uint8(0), m.Read8(0x10))
	})

	t.Run("store past the end of memory", func(t *testing.T) {
		m, c := newMachine()

		err := Run("store.star", `store(0xffff, [1, 2])`, m, c)

		assert.ErrorIs(t, err, ErrRange)
		assert.Equal(t, uint8(0), m.Read8(0xffff), "nothing must be written")
	})

	t.Run("unknown register", func(t *testing.T) {
		m, c := newMachine()

		err := Run("reg.star", `set_reg("q", 1)`, m, c)

		assert.ErrorIs(t, err, ErrRegister)
	})

	t.Run("syntax error", func(t *testing.T) {
		m, c := newMachine()

		err := Run("bad.star", `poke(`, m, c)

		var scriptErr *Error
		assert.ErrorAs(t, err, &scriptErr)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prog.star")
		require.NoError(t, os.WriteFile(path, []byte(`store(0xfffc, [op["LDX_IMM"], 0x84])`+"\n"), 0o644))

		m, c := newMachine()
		require.NoError(t, Run(path, nil, m, c))

		cycles, err := c.Execute(2, m)

		require.NoError(t, err)
		assert.Equal(t, 2, cycles)
		assert.Equal(t, uint8(0x84), c.X, "X register")
		assert.True(t, c.P.Has(cpu.FlagN))
	})
}
