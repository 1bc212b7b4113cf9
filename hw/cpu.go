package hw

import (
	"fmt"

	"nescore/emu/log"
	"nescore/hw/hwio"
)

// Locations reserved for vector pointers.
const (
	NMIVector   = uint16(0xFFFA) // Non-Maskable Interrupt
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request
)

// CPU is the NES 2A03 CPU core, a 6502 without decimal mode.
//
// Execution is instruction-based: Step executes a whole instruction and
// returns the number of cycles it took. All memory accesses go through Bus.
type CPU struct {
	Bus hwio.BankIO8

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	Cycles int64 // CPU cycles since reset

	// current instruction state
	extra  int  // extra cycles (page crossing, branch taken)
	jumped bool // control flow was redirected

	halted bool
}

// NewCPU creates a new CPU at power-up state, reading and writing memory
// through bus.
func NewCPU(bus hwio.BankIO8) *CPU {
	cpu := &CPU{Bus: bus}
	cpu.powerUp()
	return cpu
}

func (c *CPU) powerUp() {
	c.A = 0x00
	c.X = 0x00
	c.Y = 0x00
	c.SP = 0xFD
	c.P = powerUpStatus
	c.halted = false
}

// Reset puts the registers back at their power-up state and jumps to the
// reset vector. Memory is left untouched. The reset sequence takes 7 cycles.
func (c *CPU) Reset() {
	c.powerUp()
	c.PC = hwio.Read16(c.Bus, ResetVector)
	c.Cycles = 7
}

// IsHalted reports whether the CPU executed a KIL opcode.
func (c *CPU) IsHalted() bool {
	return c.halted
}

func (c *CPU) halt() {
	c.halted = true
}

// Step executes the instruction at PC and returns the number of cycles it
// took. The returned errors are fatal for the emulation session.
func (c *CPU) Step() (int, error) {
	if c.halted {
		return 0, fmt.Errorf("%w at $%04X", ErrCPUJam, c.PC)
	}

	pc := c.PC
	code := c.read8(pc)
	op := &opcodes[code]
	if op.Name == "" {
		return 0, fmt.Errorf("%w: $%02X at $%04X", ErrUnknownOpcode, code, pc)
	}
	exec := instructions[op.Ins]
	if exec == nil {
		return 0, &UnimplementedError{Opcode: code, Name: op.Name, PC: pc}
	}

	c.PC++
	c.extra = 0
	c.jumped = false

	oper := c.resolve(op.Mode)
	if oper.crossed && op.Ins.pageCrossPenalty() {
		c.extra++
	}
	exec(c, oper)

	if c.halted {
		c.PC = pc
		log.ModCPU.WarnZ("CPU halted").
			Hex16("PC", pc).
			Hex8("opcode", code).
			End()
		return int(op.Cycles), fmt.Errorf("%w: %s at $%04X", ErrCPUJam, op.Name, pc)
	}

	if !c.jumped {
		c.PC += uint16(op.Len() - 1)
	}

	cycles := int(op.Cycles) + c.extra
	c.Cycles += int64(cycles)
	return cycles, nil
}

// NMI services a non-maskable interrupt and returns the number of cycles it
// took.
func (c *CPU) NMI() int {
	log.ModCPU.DebugZ("NMI").Hex16("PC", c.PC).End()
	c.interrupt(NMIVector, false)
	c.Cycles += 7
	return 7
}

// interrupt pushes the return address and the status register then jumps
// through the given vector.
func (c *CPU) interrupt(vector uint16, brk bool) {
	c.push16(c.PC)
	p := c.P | Reserved
	p.setTo(Break, brk)
	c.push8(uint8(p))
	c.P.set(Interrupt)
	c.PC = hwio.Read16(c.Bus, vector)
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.Bus.Read8(addr, false)
}

func (c *CPU) write8(addr uint16, val uint8) {
	c.Bus.Write8(addr, val)
}

func (c *CPU) read16(addr uint16) uint16 {
	return hwio.Read16(c.Bus, addr)
}

// read16zp reads a 16-bit pointer in zero page, wrapping around within it.
func (c *CPU) read16zp(addr uint8) uint16 {
	lo := c.read8(uint16(addr))
	hi := c.read8(uint16(addr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

/* stack operations */

func (c *CPU) push8(val uint8) {
	c.write8(0x0100|uint16(c.SP), val)
	c.SP--
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val))
}

func (c *CPU) pull8() uint8 {
	c.SP++
	return c.read8(0x0100 | uint16(c.SP))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

/* addressing modes */

// operand is the resolved operand of an instruction.
type operand struct {
	mode    AddrMode
	addr    uint16 // effective address
	base    uint16 // address before indexing
	crossed bool   // indexing crossed a page boundary
}

func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// resolve computes the effective address for the given addressing mode. PC
// points to the first operand byte.
func (c *CPU) resolve(mode AddrMode) operand {
	o := operand{mode: mode}
	pc := c.PC

	switch mode {
	case Implicit, Accumulator:
	case Immediate:
		o.addr = pc
	case ZeroPage:
		o.addr = uint16(c.read8(pc))
	case ZeroPageX:
		o.addr = uint16(c.read8(pc) + c.X)
	case ZeroPageY:
		o.addr = uint16(c.read8(pc) + c.Y)
	case Relative:
		off := int8(c.read8(pc))
		o.addr = pc + 1 + uint16(off)
	case Absolute:
		o.addr = c.read16(pc)
	case AbsoluteX:
		o.base = c.read16(pc)
		o.addr = o.base + uint16(c.X)
		o.crossed = pagesDiffer(o.base, o.addr)
	case AbsoluteY:
		o.base = c.read16(pc)
		o.addr = o.base + uint16(c.Y)
		o.crossed = pagesDiffer(o.base, o.addr)
	case Indirect:
		// The 6502 doesn't carry into the pointer high byte: JMP ($xxFF)
		// reads the high byte from $xx00.
		ptr := c.read16(pc)
		lo := c.read8(ptr)
		hi := c.read8(ptr&0xFF00 | uint16(uint8(ptr)+1))
		o.addr = uint16(hi)<<8 | uint16(lo)
	case IndirectX:
		o.addr = c.read16zp(c.read8(pc) + c.X)
	case IndirectY:
		o.base = c.read16zp(c.read8(pc))
		o.addr = o.base + uint16(c.Y)
		o.crossed = pagesDiffer(o.base, o.addr)
	default:
		panic(fmt.Sprintf("unknown addressing mode %d", mode))
	}
	return o
}

// load returns the operand value.
func (c *CPU) load(o operand) uint8 {
	if o.mode == Accumulator {
		return c.A
	}
	return c.read8(o.addr)
}

// store writes back the result of a read-modify-write instruction.
func (c *CPU) store(o operand, val uint8) {
	if o.mode == Accumulator {
		c.A = val
		return
	}
	c.write8(o.addr, val)
}
