package hw

// instructions holds the implementation of each instruction. The operand
// has already been resolved when an instruction runs, and PC points to the
// first operand byte.
var instructions = [numInstructions]func(*CPU, operand){
	ADC: (*CPU).ADC,
	AND: (*CPU).AND,
	ASL: (*CPU).ASL,
	BCC: (*CPU).BCC,
	BCS: (*CPU).BCS,
	BEQ: (*CPU).BEQ,
	BIT: (*CPU).BIT,
	BMI: (*CPU).BMI,
	BNE: (*CPU).BNE,
	BPL: (*CPU).BPL,
	BRK: (*CPU).BRK,
	BVC: (*CPU).BVC,
	BVS: (*CPU).BVS,
	CLC: (*CPU).CLC,
	CLD: (*CPU).CLD,
	CLI: (*CPU).CLI,
	CLV: (*CPU).CLV,
	CMP: (*CPU).CMP,
	CPX: (*CPU).CPX,
	CPY: (*CPU).CPY,
	DEC: (*CPU).DEC,
	DEX: (*CPU).DEX,
	DEY: (*CPU).DEY,
	EOR: (*CPU).EOR,
	INC: (*CPU).INC,
	INX: (*CPU).INX,
	INY: (*CPU).INY,
	JMP: (*CPU).JMP,
	JSR: (*CPU).JSR,
	LDA: (*CPU).LDA,
	LDX: (*CPU).LDX,
	LDY: (*CPU).LDY,
	LSR: (*CPU).LSR,
	NOP: (*CPU).NOP,
	ORA: (*CPU).ORA,
	PHA: (*CPU).PHA,
	PHP: (*CPU).PHP,
	PLA: (*CPU).PLA,
	PLP: (*CPU).PLP,
	ROL: (*CPU).ROL,
	ROR: (*CPU).ROR,
	RTI: (*CPU).RTI,
	RTS: (*CPU).RTS,
	SBC: (*CPU).SBC,
	SEC: (*CPU).SEC,
	SED: (*CPU).SED,
	SEI: (*CPU).SEI,
	STA: (*CPU).STA,
	STX: (*CPU).STX,
	STY: (*CPU).STY,
	TAX: (*CPU).TAX,
	TAY: (*CPU).TAY,
	TSX: (*CPU).TSX,
	TXA: (*CPU).TXA,
	TXS: (*CPU).TXS,
	TYA: (*CPU).TYA,

	AHX: (*CPU).AHX,
	ALR: (*CPU).ALR,
	ANC: (*CPU).ANC,
	ARR: (*CPU).ARR,
	AXS: (*CPU).AXS,
	DCP: (*CPU).DCP,
	ISC: (*CPU).ISC,
	KIL: (*CPU).KIL,
	LAS: (*CPU).LAS,
	LAX: (*CPU).LAX,
	RLA: (*CPU).RLA,
	RRA: (*CPU).RRA,
	SAX: (*CPU).SAX,
	SHX: (*CPU).SHX,
	SHY: (*CPU).SHY,
	SLO: (*CPU).SLO,
	SRE: (*CPU).SRE,
	TAS: (*CPU).TAS,
	XAA: (*CPU).XAA,
}

/* alu helpers */

func (c *CPU) adc(m uint8) {
	sum := uint16(c.A) + uint16(m) + uint16(c.P.carry())
	res := uint8(sum)
	c.P.setTo(Carry, sum > 0xFF)
	c.P.setTo(Overflow, (c.A^res)&(m^res)&0x80 != 0)
	c.A = res
	c.P.checkNZ(res)
}

func (c *CPU) compare(reg, m uint8) {
	c.P.setTo(Carry, reg >= m)
	c.P.checkNZ(reg - m)
}

func (c *CPU) asl(v uint8) uint8 {
	c.P.setTo(Carry, v&0x80 != 0)
	v <<= 1
	c.P.checkNZ(v)
	return v
}

func (c *CPU) lsr(v uint8) uint8 {
	c.P.setTo(Carry, v&0x01 != 0)
	v >>= 1
	c.P.checkNZ(v)
	return v
}

func (c *CPU) rol(v uint8) uint8 {
	carry := c.P.carry()
	c.P.setTo(Carry, v&0x80 != 0)
	v = v<<1 | carry
	c.P.checkNZ(v)
	return v
}

func (c *CPU) ror(v uint8) uint8 {
	carry := c.P.carry()
	c.P.setTo(Carry, v&0x01 != 0)
	v = v>>1 | carry<<7
	c.P.checkNZ(v)
	return v
}

func (c *CPU) branch(o operand, cond bool) {
	if !cond {
		return
	}
	c.extra++
	next := c.PC + 1
	if pagesDiffer(next, o.addr) {
		c.extra++
	}
	c.PC = o.addr
	c.jumped = true
}

/* load/store */

func (c *CPU) LDA(o operand) {
	c.A = c.load(o)
	c.P.checkNZ(c.A)
}

func (c *CPU) LDX(o operand) {
	c.X = c.load(o)
	c.P.checkNZ(c.X)
}

func (c *CPU) LDY(o operand) {
	c.Y = c.load(o)
	c.P.checkNZ(c.Y)
}

func (c *CPU) STA(o operand) { c.write8(o.addr, c.A) }
func (c *CPU) STX(o operand) { c.write8(o.addr, c.X) }
func (c *CPU) STY(o operand) { c.write8(o.addr, c.Y) }

/* transfers */

func (c *CPU) TAX(operand) {
	c.X = c.A
	c.P.checkNZ(c.X)
}

func (c *CPU) TAY(operand) {
	c.Y = c.A
	c.P.checkNZ(c.Y)
}

func (c *CPU) TSX(operand) {
	c.X = c.SP
	c.P.checkNZ(c.X)
}

func (c *CPU) TXA(operand) {
	c.A = c.X
	c.P.checkNZ(c.A)
}

// TXS doesn't affect flags.
func (c *CPU) TXS(operand) {
	c.SP = c.X
}

func (c *CPU) TYA(operand) {
	c.A = c.Y
	c.P.checkNZ(c.A)
}

/* stack */

func (c *CPU) PHA(operand) {
	c.push8(c.A)
}

// PHP pushes P with the B and reserved bits set.
func (c *CPU) PHP(operand) {
	c.push8(uint8(c.P | Break | Reserved))
}

func (c *CPU) PLA(operand) {
	c.A = c.pull8()
	c.P.checkNZ(c.A)
}

// pullP pulls the status register from the stack. B and the reserved bit
// don't exist in the register and are left as is.
func (c *CPU) pullP() {
	const mask = ^(Break | Reserved)
	c.P = c.P&^mask | P(c.pull8())&mask
}

func (c *CPU) PLP(operand) {
	c.pullP()
}

/* logic and arithmetic */

func (c *CPU) AND(o operand) {
	c.A &= c.load(o)
	c.P.checkNZ(c.A)
}

func (c *CPU) EOR(o operand) {
	c.A ^= c.load(o)
	c.P.checkNZ(c.A)
}

func (c *CPU) ORA(o operand) {
	c.A |= c.load(o)
	c.P.checkNZ(c.A)
}

func (c *CPU) BIT(o operand) {
	m := c.load(o)
	c.P.setTo(Negative, m&0x80 != 0)
	c.P.setTo(Overflow, m&0x40 != 0)
	c.P.setTo(Zero, c.A&m == 0)
}

// ADC adds in binary mode, the decimal flag is ignored on the 2A03.
func (c *CPU) ADC(o operand) {
	c.adc(c.load(o))
}

func (c *CPU) SBC(o operand) {
	c.adc(^c.load(o))
}

func (c *CPU) CMP(o operand) { c.compare(c.A, c.load(o)) }
func (c *CPU) CPX(o operand) { c.compare(c.X, c.load(o)) }
func (c *CPU) CPY(o operand) { c.compare(c.Y, c.load(o)) }

/* increments and decrements */

func (c *CPU) INC(o operand) {
	v := c.load(o) + 1
	c.store(o, v)
	c.P.checkNZ(v)
}

func (c *CPU) DEC(o operand) {
	v := c.load(o) - 1
	c.store(o, v)
	c.P.checkNZ(v)
}

func (c *CPU) INX(operand) {
	c.X++
	c.P.checkNZ(c.X)
}

func (c *CPU) INY(operand) {
	c.Y++
	c.P.checkNZ(c.Y)
}

func (c *CPU) DEX(operand) {
	c.X--
	c.P.checkNZ(c.X)
}

func (c *CPU) DEY(operand) {
	c.Y--
	c.P.checkNZ(c.Y)
}

/* shifts */

func (c *CPU) ASL(o operand) { c.store(o, c.asl(c.load(o))) }
func (c *CPU) LSR(o operand) { c.store(o, c.lsr(c.load(o))) }
func (c *CPU) ROL(o operand) { c.store(o, c.rol(c.load(o))) }
func (c *CPU) ROR(o operand) { c.store(o, c.ror(c.load(o))) }

/* jumps and calls */

func (c *CPU) JMP(o operand) {
	c.PC = o.addr
	c.jumped = true
}

// JSR pushes the address of its last byte.
func (c *CPU) JSR(o operand) {
	c.push16(c.PC + 1)
	c.PC = o.addr
	c.jumped = true
}

func (c *CPU) RTS(operand) {
	c.PC = c.pull16() + 1
	c.jumped = true
}

func (c *CPU) RTI(operand) {
	c.pullP()
	c.PC = c.pull16()
	c.jumped = true
}

// BRK skips its padding byte, pushes PC and P (with B set) and jumps
// through the IRQ vector.
func (c *CPU) BRK(operand) {
	c.PC++
	c.interrupt(IRQVector, true)
	c.jumped = true
}

/* branches */

func (c *CPU) BCC(o operand) { c.branch(o, !c.P.has(Carry)) }
func (c *CPU) BCS(o operand) { c.branch(o, c.P.has(Carry)) }
func (c *CPU) BEQ(o operand) { c.branch(o, c.P.has(Zero)) }
func (c *CPU) BMI(o operand) { c.branch(o, c.P.has(Negative)) }
func (c *CPU) BNE(o operand) { c.branch(o, !c.P.has(Zero)) }
func (c *CPU) BPL(o operand) { c.branch(o, !c.P.has(Negative)) }
func (c *CPU) BVC(o operand) { c.branch(o, !c.P.has(Overflow)) }
func (c *CPU) BVS(o operand) { c.branch(o, c.P.has(Overflow)) }

/* flags */

func (c *CPU) CLC(operand) { c.P.clear(Carry) }
func (c *CPU) CLD(operand) { c.P.clear(Decimal) }
func (c *CPU) CLI(operand) { c.P.clear(Interrupt) }
func (c *CPU) CLV(operand) { c.P.clear(Overflow) }
func (c *CPU) SEC(operand) { c.P.set(Carry) }
func (c *CPU) SED(operand) { c.P.set(Decimal) }
func (c *CPU) SEI(operand) { c.P.set(Interrupt) }

func (c *CPU) NOP(operand) {}

/* undocumented */

func (c *CPU) SLO(o operand) {
	v := c.asl(c.load(o))
	c.store(o, v)
	c.A |= v
	c.P.checkNZ(c.A)
}

func (c *CPU) RLA(o operand) {
	v := c.rol(c.load(o))
	c.store(o, v)
	c.A &= v
	c.P.checkNZ(c.A)
}

func (c *CPU) SRE(o operand) {
	v := c.lsr(c.load(o))
	c.store(o, v)
	c.A ^= v
	c.P.checkNZ(c.A)
}

func (c *CPU) RRA(o operand) {
	v := c.ror(c.load(o))
	c.store(o, v)
	c.adc(v)
}

func (c *CPU) SAX(o operand) {
	c.write8(o.addr, c.A&c.X)
}

// LAX loads both A and X. The immediate form (LXA) is unstable on real
// hardware, we use the 0xFF magic constant so that A = X = imm.
func (c *CPU) LAX(o operand) {
	c.A = c.load(o)
	c.X = c.A
	c.P.checkNZ(c.A)
}

func (c *CPU) DCP(o operand) {
	v := c.load(o) - 1
	c.store(o, v)
	c.compare(c.A, v)
}

func (c *CPU) ISC(o operand) {
	v := c.load(o) + 1
	c.store(o, v)
	c.adc(^v)
}

func (c *CPU) ANC(o operand) {
	c.A &= c.load(o)
	c.P.checkNZ(c.A)
	c.P.setTo(Carry, c.P.has(Negative))
}

func (c *CPU) ALR(o operand) {
	c.A = c.lsr(c.A & c.load(o))
}

func (c *CPU) ARR(o operand) {
	c.A &= c.load(o)
	c.A = c.A>>1 | c.P.carry()<<7
	c.P.checkNZ(c.A)
	bit6 := c.A&0x40 != 0
	bit5 := c.A&0x20 != 0
	c.P.setTo(Carry, bit6)
	c.P.setTo(Overflow, bit6 != bit5)
}

// XAA is unstable, we use the 0xEE magic constant.
func (c *CPU) XAA(o operand) {
	c.A = (c.A | 0xEE) & c.X & c.load(o)
	c.P.checkNZ(c.A)
}

func (c *CPU) AXS(o operand) {
	m := c.load(o)
	ax := c.A & c.X
	c.P.setTo(Carry, ax >= m)
	c.X = ax - m
	c.P.checkNZ(c.X)
}

func (c *CPU) LAS(o operand) {
	v := c.load(o) & c.SP
	c.A, c.X, c.SP = v, v, v
	c.P.checkNZ(v)
}

// unstableStore implements the family of stores of reg & (H+1), with H the
// high byte of the base address. When indexing crosses a page, the stored
// value also replaces the high byte of the target address.
func (c *CPU) unstableStore(o operand, reg uint8) {
	v := reg & (uint8(o.base>>8) + 1)
	addr := o.addr
	if o.crossed {
		addr = uint16(v)<<8 | addr&0x00FF
	}
	c.write8(addr, v)
}

func (c *CPU) AHX(o operand) { c.unstableStore(o, c.A&c.X) }

func (c *CPU) SHX(o operand) { c.unstableStore(o, c.X) }
func (c *CPU) SHY(o operand) { c.unstableStore(o, c.Y) }

func (c *CPU) TAS(o operand) {
	c.SP = c.A & c.X
	c.unstableStore(o, c.SP)
}

func (c *CPU) KIL(operand) {
	c.halt()
}
