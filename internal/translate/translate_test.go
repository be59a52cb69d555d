package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_From(t *testing.T) {
	assert.Equal(t, "opcode $A9", From("opcode $%02X", 0xa9))
	assert.Equal(t, "PC: $FFFC", From("PC: $%04X", 0xfffc))
	assert.Equal(t, "plain", From("plain"))
}
