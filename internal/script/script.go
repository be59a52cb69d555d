// Package script runs Starlark setup scripts that install a program and its
// data into memory and preset registers before execution starts.
//
// Builtins:
//
//	poke(addr, value)        write a byte
//	poke16(addr, value)      write a little endian word
//	peek(addr)               read a byte
//	peek16(addr)             read a little endian word
//	store(addr, [b0, b1...]) write consecutive bytes
//	set_reg(name, value)     set a, x, y, pc or sp
//	reg(name)                read a, x, y, pc or sp
//
// The predeclared dict op maps names such as "LDA_IMM" to opcode values.
package script

import (
	"errors"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/nevisdale/m6502/internal/cpu"
	"github.com/nevisdale/m6502/internal/translate"
)

var f = translate.From

var (
	ErrRegister = errors.New(f("register unknown"))
	ErrRange    = errors.New(f("value out of range"))
)

// Error reports a failed script.
type Error struct {
	Name string
	Err  error
}

func (err *Error) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}

type machine struct {
	mem cpu.Memory
	cpu *cpu.CPU
}

// Run executes the script src (or the file name when src is nil) against
// mem and c. The CPU should already be reset.
func Run(name string, src any, mem cpu.Memory, c *cpu.CPU) error {
	m := &machine{mem: mem, cpu: c}

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%s: %s", name, msg)
		},
	}

	predeclared := starlark.StringDict{
		"poke":    starlark.NewBuiltin("poke", m.poke),
		"poke16":  starlark.NewBuiltin("poke16", m.poke16),
		"peek":    starlark.NewBuiltin("peek", m.peek),
		"peek16":  starlark.NewBuiltin("peek16", m.peek16),
		"store":   starlark.NewBuiltin("store", m.store),
		"set_reg": starlark.NewBuiltin("set_reg", m.setReg),
		"reg":     starlark.NewBuiltin("reg", m.reg),
		"op":      opcodeDict(),
	}

	opts := syntax.FileOptions{}
	if _, err := starlark.ExecFileOptions(&opts, thread, name, src, predeclared); err != nil {
		return &Error{Name: name, Err: err}
	}
	return nil
}

func opcodeDict() *starlark.Dict {
	list := cpu.Opcodes()
	dict := starlark.NewDict(len(list))
	for _, in := range list {
		// keys are unique and the dict is not frozen yet
		_ = dict.SetKey(starlark.String(in.Key()), starlark.MakeInt(int(in.Opcode)))
	}
	dict.Freeze()
	return dict
}

func checkRange(name string, v, limit int) error {
	if v < 0 || v > limit {
		return &Error{Name: name, Err: ErrRange}
	}
	return nil
}

func (m *machine) poke(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr, value int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "value", &value); err != nil {
		return nil, err
	}
	if err := checkRange(b.Name(), addr, 0xffff); err != nil {
		return nil, err
	}
	if err := checkRange(b.Name(), value, 0xff); err != nil {
		return nil, err
	}
	m.mem.Write8(uint16(addr), uint8(value))
	return starlark.None, nil
}

func (m *machine) poke16(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr, value int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "value", &value); err != nil {
		return nil, err
	}
	if err := checkRange(b.Name(), addr, 0xffff); err != nil {
		return nil, err
	}
	if err := checkRange(b.Name(), value, 0xffff); err != nil {
		return nil, err
	}
	m.mem.Write16(uint16(addr), uint16(value))
	return starlark.None, nil
}

func (m *machine) peek(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr); err != nil {
		return nil, err
	}
	if err := checkRange(b.Name(), addr, 0xffff); err != nil {
		return nil, err
	}
	return starlark.MakeInt(int(m.mem.Read8(uint16(addr)))), nil
}

func (m *machine) peek16(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr); err != nil {
		return nil, err
	}
	if err := checkRange(b.Name(), addr, 0xffff); err != nil {
		return nil, err
	}
	return starlark.MakeInt(int(m.mem.Read16(uint16(addr)))), nil
}

func (m *machine) store(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr int
	var data starlark.Iterable
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "data", &data); err != nil {
		return nil, err
	}
	if err := checkRange(b.Name(), addr, 0xffff); err != nil {
		return nil, err
	}

	var bytes []uint8
	iter := data.Iterate()
	defer iter.Done()
	var v starlark.Value
	for iter.Next(&v) {
		n, err := starlark.AsInt32(v)
		if err != nil {
			return nil, &Error{Name: b.Name(), Err: err}
		}
		if err := checkRange(b.Name(), n, 0xff); err != nil {
			return nil, err
		}
		bytes = append(bytes, uint8(n))
	}
	if err := checkRange(b.Name(), addr+len(bytes), 0x10000); err != nil {
		return nil, err
	}

	for i, value := range bytes {
		m.mem.Write8(uint16(addr+i), value)
	}
	return starlark.MakeInt(len(bytes)), nil
}

func (m *machine) setReg(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "value", &value); err != nil {
		return nil, err
	}

	limit := 0xff
	if name == "pc" || name == "sp" {
		limit = 0xffff
	}
	if err := checkRange(name, value, limit); err != nil {
		return nil, err
	}

	switch name {
	case "a":
		m.cpu.SetRegister(cpu.RegA, uint8(value))
	case "x":
		m.cpu.SetRegister(cpu.RegX, uint8(value))
	case "y":
		m.cpu.SetRegister(cpu.RegY, uint8(value))
	case "pc":
		m.cpu.PC = uint16(value)
	case "sp":
		m.cpu.SP = uint16(value)
	default:
		return nil, &Error{Name: name, Err: ErrRegister}
	}
	return starlark.None, nil
}

func (m *machine) reg(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}

	switch name {
	case "a":
		return starlark.MakeInt(int(m.cpu.Register(cpu.RegA))), nil
	case "x":
		return starlark.MakeInt(int(m.cpu.Register(cpu.RegX))), nil
	case "y":
		return starlark.MakeInt(int(m.cpu.Register(cpu.RegY))), nil
	case "pc":
		return starlark.MakeInt(int(m.cpu.PC)), nil
	case "sp":
		return starlark.MakeInt(int(m.cpu.SP)), nil
	}
	return nil, &Error{Name: name, Err: ErrRegister}
}
