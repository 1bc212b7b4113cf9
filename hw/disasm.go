package hw

import (
	"fmt"
)

// DisasmOp is a disassembled instruction.
type DisasmOp struct {
	PC      uint16
	Buf     []byte // instruction bytes
	Opcode  string // mnemonic
	Illegal bool   // undocumented opcode
	Oper    string // operand, with the effective address and memory content
}

// String returns the instruction the way nestest.log shows it:
//
//	C000  4C F5 C5  JMP $C5F5
//	C6BD  04 A9    *NOP $A9 = 00
func (d DisasmOp) String() string {
	return string(d.appendTo(nil))
}

// appendTo appends the 48 first columns of a trace line to buf.
func (d DisasmOp) appendTo(buf []byte) []byte {
	const (
		bytesCol = 6  // instruction bytes
		opCol    = 15 // mnemonic (or '*' for undocumented opcodes)
		endCol   = 48
	)

	start := len(buf)
	buf = fmt.Appendf(buf, "%04X  ", d.PC)
	for i, b := range d.Buf {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = fmt.Appendf(buf, "%02X", b)
	}
	buf = pad(buf, start+opCol)

	if d.Illegal {
		buf = append(buf, '*')
	} else {
		buf = append(buf, ' ')
	}
	buf = append(buf, d.Opcode...)
	if d.Oper != "" {
		buf = append(buf, ' ')
		buf = append(buf, d.Oper...)
	}
	return pad(buf, start+endCol)
}

func pad(buf []byte, n int) []byte {
	for len(buf) < n {
		buf = append(buf, ' ')
	}
	return buf
}

// Disasm disassembles the instruction at pc. Memory is accessed with peek
// reads so that disassembling has no side effects. Effective addresses of
// indexed modes are computed with the current X and Y registers.
func (c *CPU) Disasm(pc uint16) DisasmOp {
	peek8 := func(addr uint16) uint8 { return c.Bus.Read8(addr, true) }
	peek16zp := func(addr uint8) uint16 { return uint16(peek8(uint16(addr+1)))<<8 | uint16(peek8(uint16(addr))) }

	code := peek8(pc)
	op := opcodes[code]
	if op.Name == "" {
		return DisasmOp{PC: pc, Buf: []byte{code}, Opcode: "???"}
	}

	d := DisasmOp{
		PC:      pc,
		Buf:     make([]byte, op.Len()),
		Opcode:  op.Name,
		Illegal: op.Illegal,
	}
	for i := range d.Buf {
		d.Buf[i] = peek8(pc + uint16(i))
	}

	var (
		lo  uint8
		abs uint16
	)
	if len(d.Buf) > 1 {
		lo = d.Buf[1]
	}
	if len(d.Buf) > 2 {
		abs = uint16(d.Buf[2])<<8 | uint16(lo)
	}

	switch op.Mode {
	case Implicit:
	case Accumulator:
		d.Oper = "A"
	case Immediate:
		d.Oper = fmt.Sprintf("#$%02X", lo)
	case ZeroPage:
		d.Oper = fmt.Sprintf("$%02X = %02X", lo, peek8(uint16(lo)))
	case ZeroPageX:
		addr := lo + c.X
		d.Oper = fmt.Sprintf("$%02X,X @ %02X = %02X", lo, addr, peek8(uint16(addr)))
	case ZeroPageY:
		addr := lo + c.Y
		d.Oper = fmt.Sprintf("$%02X,Y @ %02X = %02X", lo, addr, peek8(uint16(addr)))
	case Relative:
		d.Oper = fmt.Sprintf("$%04X", pc+2+uint16(int8(lo)))
	case Absolute:
		if op.Ins == JMP || op.Ins == JSR {
			d.Oper = fmt.Sprintf("$%04X", abs)
		} else {
			d.Oper = fmt.Sprintf("$%04X = %02X", abs, peek8(abs))
		}
	case AbsoluteX:
		addr := abs + uint16(c.X)
		d.Oper = fmt.Sprintf("$%04X,X @ %04X = %02X", abs, addr, peek8(addr))
	case AbsoluteY:
		addr := abs + uint16(c.Y)
		d.Oper = fmt.Sprintf("$%04X,Y @ %04X = %02X", abs, addr, peek8(addr))
	case Indirect:
		dst := uint16(peek8(abs&0xFF00|uint16(uint8(abs)+1)))<<8 | uint16(peek8(abs))
		d.Oper = fmt.Sprintf("($%04X) = %04X", abs, dst)
	case IndirectX:
		ptr := lo + c.X
		addr := peek16zp(ptr)
		d.Oper = fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", lo, ptr, addr, peek8(addr))
	case IndirectY:
		base := peek16zp(lo)
		addr := base + uint16(c.Y)
		d.Oper = fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", lo, base, addr, peek8(addr))
	}
	return d
}
