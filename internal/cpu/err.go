package cpu

import (
	"errors"

	"github.com/nevisdale/m6502/internal/translate"
)

var f = translate.From

var (
	ErrUnsupportedOpcode = errors.New(f("unsupported opcode"))
	ErrAddrMode          = errors.New(f("addressing mode invalid"))
)

// OpcodeError reports an opcode with no entry in the instruction table.
type OpcodeError struct {
	Opcode uint8
	Addr   uint16 // where the opcode was fetched from
}

func (err *OpcodeError) Error() string {
	return f("unsupported opcode $%02X at $%04X", err.Opcode, err.Addr)
}

func (err *OpcodeError) Is(target error) bool {
	return target == ErrUnsupportedOpcode
}
