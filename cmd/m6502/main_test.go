package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nevisdale/m6502/internal/cpu"
)

func Test_Run(t *testing.T) {
	dir := t.TempDir()

	t.Run("image and script", func(t *testing.T) {
		image := filepath.Join(dir, "sub.bin")
		require.NoError(t, os.WriteFile(image, []byte{cpu.LDA_IMM, 0x84}, 0o644))
		setup := filepath.Join(dir, "setup.star")
		require.NoError(t, os.WriteFile(setup, []byte(`store(0xfffc, [op["JSR_ABS"], 0x42, 0x42])`+"\n"), 0o644))

		var out bytes.Buffer
		err := run(config{image: image, org: 0x4242, script: setup, cycles: 8}, &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "cpu.A: $84")
		assert.Contains(t, out.String(), "cpu.PC: $4244")
		assert.Contains(t, out.String(), "cpu.SP: $0101")
		assert.Contains(t, out.String(), "cpu.P: Nv-bdizc")
		assert.Contains(t, out.String(), "cycles: 8")
	})

	t.Run("unsupported opcode", func(t *testing.T) {
		var out bytes.Buffer
		err := run(config{cycles: 2}, &out)

		assert.ErrorIs(t, err, cpu.ErrUnsupportedOpcode)
		assert.Contains(t, out.String(), "cycles: 1")
	})

	t.Run("missing image", func(t *testing.T) {
		var out bytes.Buffer
		err := run(config{image: filepath.Join(dir, "missing.bin"), cycles: 2}, &out)

		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Empty(t, out.String())
	})
}
