package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nevisdale/m6502/internal/mem"
)

func Test_Disassemble(t *testing.T) {
	m := mem.New()
	require.NoError(t, m.Load(0x0200, []uint8{
		LDA_IMM, 0x84,
		LDX_ZPY, 0x10,
		LDY_ABSX, 0x34, 0x12,
		LDA_INDX, 0x20,
		LDA_INDY, 0x22,
		0xff,
		JSR_ABS, 0x00, 0x02,
	}))

	disasm := Disassemble(m, 0x0200, 0x020f)

	assert.Equal(t, map[uint16]string{
		0x0200: "$0200: LDA #$84 {IMM}",
		0x0202: "$0202: LDX $10,Y {ZPY}",
		0x0204: "$0204: LDY $1234,X {ABSX}",
		0x0207: "$0207: LDA ($20,X) {INDX}",
		0x0209: "$0209: LDA ($22),Y {INDY}",
		0x020b: "$020B: ???",
		0x020c: "$020C: JSR $0200 {ABS}",
		0x020f: "$020F: ???",
	}, disasm)

	t.Run("whole address space", func(t *testing.T) {
		m := mem.New()
		disasm := Disassemble(m, 0x0000, 0xffff)

		assert.Len(t, disasm, 0x10000)
	})
}
