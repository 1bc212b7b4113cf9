package hw

//go:generate go tool stringer -type=Instruction,AddrMode -output=opcodes_string.go

// Instruction identifies the operation performed by an opcode.
type Instruction uint8

const (
	// Documented instructions.
	ADC Instruction = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// Undocumented instructions.
	AHX
	ALR
	ANC
	ARR
	AXS
	DCP
	ISC
	KIL
	LAS
	LAX
	RLA
	RRA
	SAX
	SHX
	SHY
	SLO
	SRE
	TAS
	XAA

	numInstructions
)

// AddrMode is an addressing mode of the 6502.
type AddrMode uint8

const (
	Implicit AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// Len returns the length in bytes of an instruction using this addressing
// mode, opcode included.
func (m AddrMode) Len() int {
	switch m {
	case Implicit, Accumulator:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 2
}

// An Opcode describes one of the 256 opcodes.
type Opcode struct {
	Name    string // mnemonic, as shown in disassembly
	Ins     Instruction
	Mode    AddrMode
	Cycles  uint8 // base cycle count
	Illegal bool  // undocumented opcode
}

// Len returns the instruction length in bytes.
func (op *Opcode) Len() int {
	return op.Mode.Len()
}

// pageCrossPenalty reports whether the instruction takes an extra cycle when
// its effective address crosses a page boundary. This is the case for
// instructions only reading their operand.
func (i Instruction) pageCrossPenalty() bool {
	switch i {
	case ADC, AND, CMP, EOR, LDA, LDX, LDY, ORA, SBC, LAX, LAS, NOP:
		return true
	}
	return false
}

// Opcodes returns the description of an opcode.
func Opcodes(code uint8) Opcode {
	return opcodes[code]
}

var opcodes = [256]Opcode{
	0x00: {Name: "BRK", Ins: BRK, Mode: Implicit, Cycles: 7},
	0x01: {Name: "ORA", Ins: ORA, Mode: IndirectX, Cycles: 6},
	0x02: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0x03: {Name: "SLO", Ins: SLO, Mode: IndirectX, Cycles: 8, Illegal: true},
	0x04: {Name: "NOP", Ins: NOP, Mode: ZeroPage, Cycles: 3, Illegal: true},
	0x05: {Name: "ORA", Ins: ORA, Mode: ZeroPage, Cycles: 3},
	0x06: {Name: "ASL", Ins: ASL, Mode: ZeroPage, Cycles: 5},
	0x07: {Name: "SLO", Ins: SLO, Mode: ZeroPage, Cycles: 5, Illegal: true},
	0x08: {Name: "PHP", Ins: PHP, Mode: Implicit, Cycles: 3},
	0x09: {Name: "ORA", Ins: ORA, Mode: Immediate, Cycles: 2},
	0x0A: {Name: "ASL", Ins: ASL, Mode: Accumulator, Cycles: 2},
	0x0B: {Name: "ANC", Ins: ANC, Mode: Immediate, Cycles: 2, Illegal: true},
	0x0C: {Name: "NOP", Ins: NOP, Mode: Absolute, Cycles: 4, Illegal: true},
	0x0D: {Name: "ORA", Ins: ORA, Mode: Absolute, Cycles: 4},
	0x0E: {Name: "ASL", Ins: ASL, Mode: Absolute, Cycles: 6},
	0x0F: {Name: "SLO", Ins: SLO, Mode: Absolute, Cycles: 6, Illegal: true},
	0x10: {Name: "BPL", Ins: BPL, Mode: Relative, Cycles: 2},
	0x11: {Name: "ORA", Ins: ORA, Mode: IndirectY, Cycles: 5},
	0x12: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0x13: {Name: "SLO", Ins: SLO, Mode: IndirectY, Cycles: 8, Illegal: true},
	0x14: {Name: "NOP", Ins: NOP, Mode: ZeroPageX, Cycles: 4, Illegal: true},
	0x15: {Name: "ORA", Ins: ORA, Mode: ZeroPageX, Cycles: 4},
	0x16: {Name: "ASL", Ins: ASL, Mode: ZeroPageX, Cycles: 6},
	0x17: {Name: "SLO", Ins: SLO, Mode: ZeroPageX, Cycles: 6, Illegal: true},
	0x18: {Name: "CLC", Ins: CLC, Mode: Implicit, Cycles: 2},
	0x19: {Name: "ORA", Ins: ORA, Mode: AbsoluteY, Cycles: 4},
	0x1A: {Name: "NOP", Ins: NOP, Mode: Implicit, Cycles: 2, Illegal: true},
	0x1B: {Name: "SLO", Ins: SLO, Mode: AbsoluteY, Cycles: 7, Illegal: true},
	0x1C: {Name: "NOP", Ins: NOP, Mode: AbsoluteX, Cycles: 4, Illegal: true},
	0x1D: {Name: "ORA", Ins: ORA, Mode: AbsoluteX, Cycles: 4},
	0x1E: {Name: "ASL", Ins: ASL, Mode: AbsoluteX, Cycles: 7},
	0x1F: {Name: "SLO", Ins: SLO, Mode: AbsoluteX, Cycles: 7, Illegal: true},
	0x20: {Name: "JSR", Ins: JSR, Mode: Absolute, Cycles: 6},
	0x21: {Name: "AND", Ins: AND, Mode: IndirectX, Cycles: 6},
	0x22: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0x23: {Name: "RLA", Ins: RLA, Mode: IndirectX, Cycles: 8, Illegal: true},
	0x24: {Name: "BIT", Ins: BIT, Mode: ZeroPage, Cycles: 3},
	0x25: {Name: "AND", Ins: AND, Mode: ZeroPage, Cycles: 3},
	0x26: {Name: "ROL", Ins: ROL, Mode: ZeroPage, Cycles: 5},
	0x27: {Name: "RLA", Ins: RLA, Mode: ZeroPage, Cycles: 5, Illegal: true},
	0x28: {Name: "PLP", Ins: PLP, Mode: Implicit, Cycles: 4},
	0x29: {Name: "AND", Ins: AND, Mode: Immediate, Cycles: 2},
	0x2A: {Name: "ROL", Ins: ROL, Mode: Accumulator, Cycles: 2},
	0x2B: {Name: "ANC", Ins: ANC, Mode: Immediate, Cycles: 2, Illegal: true},
	0x2C: {Name: "BIT", Ins: BIT, Mode: Absolute, Cycles: 4},
	0x2D: {Name: "AND", Ins: AND, Mode: Absolute, Cycles: 4},
	0x2E: {Name: "ROL", Ins: ROL, Mode: Absolute, Cycles: 6},
	0x2F: {Name: "RLA", Ins: RLA, Mode: Absolute, Cycles: 6, Illegal: true},
	0x30: {Name: "BMI", Ins: BMI, Mode: Relative, Cycles: 2},
	0x31: {Name: "AND", Ins: AND, Mode: IndirectY, Cycles: 5},
	0x32: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0x33: {Name: "RLA", Ins: RLA, Mode: IndirectY, Cycles: 8, Illegal: true},
	0x34: {Name: "NOP", Ins: NOP, Mode: ZeroPageX, Cycles: 4, Illegal: true},
	0x35: {Name: "AND", Ins: AND, Mode: ZeroPageX, Cycles: 4},
	0x36: {Name: "ROL", Ins: ROL, Mode: ZeroPageX, Cycles: 6},
	0x37: {Name: "RLA", Ins: RLA, Mode: ZeroPageX, Cycles: 6, Illegal: true},
	0x38: {Name: "SEC", Ins: SEC, Mode: Implicit, Cycles: 2},
	0x39: {Name: "AND", Ins: AND, Mode: AbsoluteY, Cycles: 4},
	0x3A: {Name: "NOP", Ins: NOP, Mode: Implicit, Cycles: 2, Illegal: true},
	0x3B: {Name: "RLA", Ins: RLA, Mode: AbsoluteY, Cycles: 7, Illegal: true},
	0x3C: {Name: "NOP", Ins: NOP, Mode: AbsoluteX, Cycles: 4, Illegal: true},
	0x3D: {Name: "AND", Ins: AND, Mode: AbsoluteX, Cycles: 4},
	0x3E: {Name: "ROL", Ins: ROL, Mode: AbsoluteX, Cycles: 7},
	0x3F: {Name: "RLA", Ins: RLA, Mode: AbsoluteX, Cycles: 7, Illegal: true},
	0x40: {Name: "RTI", Ins: RTI, Mode: Implicit, Cycles: 6},
	0x41: {Name: "EOR", Ins: EOR, Mode: IndirectX, Cycles: 6},
	0x42: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0x43: {Name: "SRE", Ins: SRE, Mode: IndirectX, Cycles: 8, Illegal: true},
	0x44: {Name: "NOP", Ins: NOP, Mode: ZeroPage, Cycles: 3, Illegal: true},
	0x45: {Name: "EOR", Ins: EOR, Mode: ZeroPage, Cycles: 3},
	0x46: {Name: "LSR", Ins: LSR, Mode: ZeroPage, Cycles: 5},
	0x47: {Name: "SRE", Ins: SRE, Mode: ZeroPage, Cycles: 5, Illegal: true},
	0x48: {Name: "PHA", Ins: PHA, Mode: Implicit, Cycles: 3},
	0x49: {Name: "EOR", Ins: EOR, Mode: Immediate, Cycles: 2},
	0x4A: {Name: "LSR", Ins: LSR, Mode: Accumulator, Cycles: 2},
	0x4B: {Name: "ALR", Ins: ALR, Mode: Immediate, Cycles: 2, Illegal: true},
	0x4C: {Name: "JMP", Ins: JMP, Mode: Absolute, Cycles: 3},
	0x4D: {Name: "EOR", Ins: EOR, Mode: Absolute, Cycles: 4},
	0x4E: {Name: "LSR", Ins: LSR, Mode: Absolute, Cycles: 6},
	0x4F: {Name: "SRE", Ins: SRE, Mode: Absolute, Cycles: 6, Illegal: true},
	0x50: {Name: "BVC", Ins: BVC, Mode: Relative, Cycles: 2},
	0x51: {Name: "EOR", Ins: EOR, Mode: IndirectY, Cycles: 5},
	0x52: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0x53: {Name: "SRE", Ins: SRE, Mode: IndirectY, Cycles: 8, Illegal: true},
	0x54: {Name: "NOP", Ins: NOP, Mode: ZeroPageX, Cycles: 4, Illegal: true},
	0x55: {Name: "EOR", Ins: EOR, Mode: ZeroPageX, Cycles: 4},
	0x56: {Name: "LSR", Ins: LSR, Mode: ZeroPageX, Cycles: 6},
	0x57: {Name: "SRE", Ins: SRE, Mode: ZeroPageX, Cycles: 6, Illegal: true},
	0x58: {Name: "CLI", Ins: CLI, Mode: Implicit, Cycles: 2},
	0x59: {Name: "EOR", Ins: EOR, Mode: AbsoluteY, Cycles: 4},
	0x5A: {Name: "NOP", Ins: NOP, Mode: Implicit, Cycles: 2, Illegal: true},
	0x5B: {Name: "SRE", Ins: SRE, Mode: AbsoluteY, Cycles: 7, Illegal: true},
	0x5C: {Name: "NOP", Ins: NOP, Mode: AbsoluteX, Cycles: 4, Illegal: true},
	0x5D: {Name: "EOR", Ins: EOR, Mode: AbsoluteX, Cycles: 4},
	0x5E: {Name: "LSR", Ins: LSR, Mode: AbsoluteX, Cycles: 7},
	0x5F: {Name: "SRE", Ins: SRE, Mode: AbsoluteX, Cycles: 7, Illegal: true},
	0x60: {Name: "RTS", Ins: RTS, Mode: Implicit, Cycles: 6},
	0x61: {Name: "ADC", Ins: ADC, Mode: IndirectX, Cycles: 6},
	0x62: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0x63: {Name: "RRA", Ins: RRA, Mode: IndirectX, Cycles: 8, Illegal: true},
	0x64: {Name: "NOP", Ins: NOP, Mode: ZeroPage, Cycles: 3, Illegal: true},
	0x65: {Name: "ADC", Ins: ADC, Mode: ZeroPage, Cycles: 3},
	0x66: {Name: "ROR", Ins: ROR, Mode: ZeroPage, Cycles: 5},
	0x67: {Name: "RRA", Ins: RRA, Mode: ZeroPage, Cycles: 5, Illegal: true},
	0x68: {Name: "PLA", Ins: PLA, Mode: Implicit, Cycles: 4},
	0x69: {Name: "ADC", Ins: ADC, Mode: Immediate, Cycles: 2},
	0x6A: {Name: "ROR", Ins: ROR, Mode: Accumulator, Cycles: 2},
	0x6B: {Name: "ARR", Ins: ARR, Mode: Immediate, Cycles: 2, Illegal: true},
	0x6C: {Name: "JMP", Ins: JMP, Mode: Indirect, Cycles: 5},
	0x6D: {Name: "ADC", Ins: ADC, Mode: Absolute, Cycles: 4},
	0x6E: {Name: "ROR", Ins: ROR, Mode: Absolute, Cycles: 6},
	0x6F: {Name: "RRA", Ins: RRA, Mode: Absolute, Cycles: 6, Illegal: true},
	0x70: {Name: "BVS", Ins: BVS, Mode: Relative, Cycles: 2},
	0x71: {Name: "ADC", Ins: ADC, Mode: IndirectY, Cycles: 5},
	0x72: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0x73: {Name: "RRA", Ins: RRA, Mode: IndirectY, Cycles: 8, Illegal: true},
	0x74: {Name: "NOP", Ins: NOP, Mode: ZeroPageX, Cycles: 4, Illegal: true},
	0x75: {Name: "ADC", Ins: ADC, Mode: ZeroPageX, Cycles: 4},
	0x76: {Name: "ROR", Ins: ROR, Mode: ZeroPageX, Cycles: 6},
	0x77: {Name: "RRA", Ins: RRA, Mode: ZeroPageX, Cycles: 6, Illegal: true},
	0x78: {Name: "SEI", Ins: SEI, Mode: Implicit, Cycles: 2},
	0x79: {Name: "ADC", Ins: ADC, Mode: AbsoluteY, Cycles: 4},
	0x7A: {Name: "NOP", Ins: NOP, Mode: Implicit, Cycles: 2, Illegal: true},
	0x7B: {Name: "RRA", Ins: RRA, Mode: AbsoluteY, Cycles: 7, Illegal: true},
	0x7C: {Name: "NOP", Ins: NOP, Mode: AbsoluteX, Cycles: 4, Illegal: true},
	0x7D: {Name: "ADC", Ins: ADC, Mode: AbsoluteX, Cycles: 4},
	0x7E: {Name: "ROR", Ins: ROR, Mode: AbsoluteX, Cycles: 7},
	0x7F: {Name: "RRA", Ins: RRA, Mode: AbsoluteX, Cycles: 7, Illegal: true},
	0x80: {Name: "NOP", Ins: NOP, Mode: Immediate, Cycles: 2, Illegal: true},
	0x81: {Name: "STA", Ins: STA, Mode: IndirectX, Cycles: 6},
	0x82: {Name: "NOP", Ins: NOP, Mode: Immediate, Cycles: 2, Illegal: true},
	0x83: {Name: "SAX", Ins: SAX, Mode: IndirectX, Cycles: 6, Illegal: true},
	0x84: {Name: "STY", Ins: STY, Mode: ZeroPage, Cycles: 3},
	0x85: {Name: "STA", Ins: STA, Mode: ZeroPage, Cycles: 3},
	0x86: {Name: "STX", Ins: STX, Mode: ZeroPage, Cycles: 3},
	0x87: {Name: "SAX", Ins: SAX, Mode: ZeroPage, Cycles: 3, Illegal: true},
	0x88: {Name: "DEY", Ins: DEY, Mode: Implicit, Cycles: 2},
	0x89: {Name: "NOP", Ins: NOP, Mode: Immediate, Cycles: 2, Illegal: true},
	0x8A: {Name: "TXA", Ins: TXA, Mode: Implicit, Cycles: 2},
	0x8B: {Name: "XAA", Ins: XAA, Mode: Immediate, Cycles: 2, Illegal: true},
	0x8C: {Name: "STY", Ins: STY, Mode: Absolute, Cycles: 4},
	0x8D: {Name: "STA", Ins: STA, Mode: Absolute, Cycles: 4},
	0x8E: {Name: "STX", Ins: STX, Mode: Absolute, Cycles: 4},
	0x8F: {Name: "SAX", Ins: SAX, Mode: Absolute, Cycles: 4, Illegal: true},
	0x90: {Name: "BCC", Ins: BCC, Mode: Relative, Cycles: 2},
	0x91: {Name: "STA", Ins: STA, Mode: IndirectY, Cycles: 6},
	0x92: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0x93: {Name: "AHX", Ins: AHX, Mode: IndirectY, Cycles: 6, Illegal: true},
	0x94: {Name: "STY", Ins: STY, Mode: ZeroPageX, Cycles: 4},
	0x95: {Name: "STA", Ins: STA, Mode: ZeroPageX, Cycles: 4},
	0x96: {Name: "STX", Ins: STX, Mode: ZeroPageY, Cycles: 4},
	0x97: {Name: "SAX", Ins: SAX, Mode: ZeroPageY, Cycles: 4, Illegal: true},
	0x98: {Name: "TYA", Ins: TYA, Mode: Implicit, Cycles: 2},
	0x99: {Name: "STA", Ins: STA, Mode: AbsoluteY, Cycles: 5},
	0x9A: {Name: "TXS", Ins: TXS, Mode: Implicit, Cycles: 2},
	0x9B: {Name: "TAS", Ins: TAS, Mode: AbsoluteY, Cycles: 5, Illegal: true},
	0x9C: {Name: "SHY", Ins: SHY, Mode: AbsoluteX, Cycles: 5, Illegal: true},
	0x9D: {Name: "STA", Ins: STA, Mode: AbsoluteX, Cycles: 5},
	0x9E: {Name: "SHX", Ins: SHX, Mode: AbsoluteY, Cycles: 5, Illegal: true},
	0x9F: {Name: "AHX", Ins: AHX, Mode: AbsoluteY, Cycles: 5, Illegal: true},
	0xA0: {Name: "LDY", Ins: LDY, Mode: Immediate, Cycles: 2},
	0xA1: {Name: "LDA", Ins: LDA, Mode: IndirectX, Cycles: 6},
	0xA2: {Name: "LDX", Ins: LDX, Mode: Immediate, Cycles: 2},
	0xA3: {Name: "LAX", Ins: LAX, Mode: IndirectX, Cycles: 6, Illegal: true},
	0xA4: {Name: "LDY", Ins: LDY, Mode: ZeroPage, Cycles: 3},
	0xA5: {Name: "LDA", Ins: LDA, Mode: ZeroPage, Cycles: 3},
	0xA6: {Name: "LDX", Ins: LDX, Mode: ZeroPage, Cycles: 3},
	0xA7: {Name: "LAX", Ins: LAX, Mode: ZeroPage, Cycles: 3, Illegal: true},
	0xA8: {Name: "TAY", Ins: TAY, Mode: Implicit, Cycles: 2},
	0xA9: {Name: "LDA", Ins: LDA, Mode: Immediate, Cycles: 2},
	0xAA: {Name: "TAX", Ins: TAX, Mode: Implicit, Cycles: 2},
	0xAB: {Name: "LAX", Ins: LAX, Mode: Immediate, Cycles: 2, Illegal: true},
	0xAC: {Name: "LDY", Ins: LDY, Mode: Absolute, Cycles: 4},
	0xAD: {Name: "LDA", Ins: LDA, Mode: Absolute, Cycles: 4},
	0xAE: {Name: "LDX", Ins: LDX, Mode: Absolute, Cycles: 4},
	0xAF: {Name: "LAX", Ins: LAX, Mode: Absolute, Cycles: 4, Illegal: true},
	0xB0: {Name: "BCS", Ins: BCS, Mode: Relative, Cycles: 2},
	0xB1: {Name: "LDA", Ins: LDA, Mode: IndirectY, Cycles: 5},
	0xB2: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0xB3: {Name: "LAX", Ins: LAX, Mode: IndirectY, Cycles: 5, Illegal: true},
	0xB4: {Name: "LDY", Ins: LDY, Mode: ZeroPageX, Cycles: 4},
	0xB5: {Name: "LDA", Ins: LDA, Mode: ZeroPageX, Cycles: 4},
	0xB6: {Name: "LDX", Ins: LDX, Mode: ZeroPageY, Cycles: 4},
	0xB7: {Name: "LAX", Ins: LAX, Mode: ZeroPageY, Cycles: 4, Illegal: true},
	0xB8: {Name: "CLV", Ins: CLV, Mode: Implicit, Cycles: 2},
	0xB9: {Name: "LDA", Ins: LDA, Mode: AbsoluteY, Cycles: 4},
	0xBA: {Name: "TSX", Ins: TSX, Mode: Implicit, Cycles: 2},
	0xBB: {Name: "LAS", Ins: LAS, Mode: AbsoluteY, Cycles: 4, Illegal: true},
	0xBC: {Name: "LDY", Ins: LDY, Mode: AbsoluteX, Cycles: 4},
	0xBD: {Name: "LDA", Ins: LDA, Mode: AbsoluteX, Cycles: 4},
	0xBE: {Name: "LDX", Ins: LDX, Mode: AbsoluteY, Cycles: 4},
	0xBF: {Name: "LAX", Ins: LAX, Mode: AbsoluteY, Cycles: 4, Illegal: true},
	0xC0: {Name: "CPY", Ins: CPY, Mode: Immediate, Cycles: 2},
	0xC1: {Name: "CMP", Ins: CMP, Mode: IndirectX, Cycles: 6},
	0xC2: {Name: "NOP", Ins: NOP, Mode: Immediate, Cycles: 2, Illegal: true},
	0xC3: {Name: "DCP", Ins: DCP, Mode: IndirectX, Cycles: 8, Illegal: true},
	0xC4: {Name: "CPY", Ins: CPY, Mode: ZeroPage, Cycles: 3},
	0xC5: {Name: "CMP", Ins: CMP, Mode: ZeroPage, Cycles: 3},
	0xC6: {Name: "DEC", Ins: DEC, Mode: ZeroPage, Cycles: 5},
	0xC7: {Name: "DCP", Ins: DCP, Mode: ZeroPage, Cycles: 5, Illegal: true},
	0xC8: {Name: "INY", Ins: INY, Mode: Implicit, Cycles: 2},
	0xC9: {Name: "CMP", Ins: CMP, Mode: Immediate, Cycles: 2},
	0xCA: {Name: "DEX", Ins: DEX, Mode: Implicit, Cycles: 2},
	0xCB: {Name: "AXS", Ins: AXS, Mode: Immediate, Cycles: 2, Illegal: true},
	0xCC: {Name: "CPY", Ins: CPY, Mode: Absolute, Cycles: 4},
	0xCD: {Name: "CMP", Ins: CMP, Mode: Absolute, Cycles: 4},
	0xCE: {Name: "DEC", Ins: DEC, Mode: Absolute, Cycles: 6},
	0xCF: {Name: "DCP", Ins: DCP, Mode: Absolute, Cycles: 6, Illegal: true},
	0xD0: {Name: "BNE", Ins: BNE, Mode: Relative, Cycles: 2},
	0xD1: {Name: "CMP", Ins: CMP, Mode: IndirectY, Cycles: 5},
	0xD2: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0xD3: {Name: "DCP", Ins: DCP, Mode: IndirectY, Cycles: 8, Illegal: true},
	0xD4: {Name: "NOP", Ins: NOP, Mode: ZeroPageX, Cycles: 4, Illegal: true},
	0xD5: {Name: "CMP", Ins: CMP, Mode: ZeroPageX, Cycles: 4},
	0xD6: {Name: "DEC", Ins: DEC, Mode: ZeroPageX, Cycles: 6},
	0xD7: {Name: "DCP", Ins: DCP, Mode: ZeroPageX, Cycles: 6, Illegal: true},
	0xD8: {Name: "CLD", Ins: CLD, Mode: Implicit, Cycles: 2},
	0xD9: {Name: "CMP", Ins: CMP, Mode: AbsoluteY, Cycles: 4},
	0xDA: {Name: "NOP", Ins: NOP, Mode: Implicit, Cycles: 2, Illegal: true},
	0xDB: {Name: "DCP", Ins: DCP, Mode: AbsoluteY, Cycles: 7, Illegal: true},
	0xDC: {Name: "NOP", Ins: NOP, Mode: AbsoluteX, Cycles: 4, Illegal: true},
	0xDD: {Name: "CMP", Ins: CMP, Mode: AbsoluteX, Cycles: 4},
	0xDE: {Name: "DEC", Ins: DEC, Mode: AbsoluteX, Cycles: 7},
	0xDF: {Name: "DCP", Ins: DCP, Mode: AbsoluteX, Cycles: 7, Illegal: true},
	0xE0: {Name: "CPX", Ins: CPX, Mode: Immediate, Cycles: 2},
	0xE1: {Name: "SBC", Ins: SBC, Mode: IndirectX, Cycles: 6},
	0xE2: {Name: "NOP", Ins: NOP, Mode: Immediate, Cycles: 2, Illegal: true},
	0xE3: {Name: "ISB", Ins: ISC, Mode: IndirectX, Cycles: 8, Illegal: true},
	0xE4: {Name: "CPX", Ins: CPX, Mode: ZeroPage, Cycles: 3},
	0xE5: {Name: "SBC", Ins: SBC, Mode: ZeroPage, Cycles: 3},
	0xE6: {Name: "INC", Ins: INC, Mode: ZeroPage, Cycles: 5},
	0xE7: {Name: "ISB", Ins: ISC, Mode: ZeroPage, Cycles: 5, Illegal: true},
	0xE8: {Name: "INX", Ins: INX, Mode: Implicit, Cycles: 2},
	0xE9: {Name: "SBC", Ins: SBC, Mode: Immediate, Cycles: 2},
	0xEA: {Name: "NOP", Ins: NOP, Mode: Implicit, Cycles: 2},
	0xEB: {Name: "SBC", Ins: SBC, Mode: Immediate, Cycles: 2, Illegal: true},
	0xEC: {Name: "CPX", Ins: CPX, Mode: Absolute, Cycles: 4},
	0xED: {Name: "SBC", Ins: SBC, Mode: Absolute, Cycles: 4},
	0xEE: {Name: "INC", Ins: INC, Mode: Absolute, Cycles: 6},
	0xEF: {Name: "ISB", Ins: ISC, Mode: Absolute, Cycles: 6, Illegal: true},
	0xF0: {Name: "BEQ", Ins: BEQ, Mode: Relative, Cycles: 2},
	0xF1: {Name: "SBC", Ins: SBC, Mode: IndirectY, Cycles: 5},
	0xF2: {Name: "KIL", Ins: KIL, Mode: Implicit, Cycles: 2, Illegal: true},
	0xF3: {Name: "ISB", Ins: ISC, Mode: IndirectY, Cycles: 8, Illegal: true},
	0xF4: {Name: "NOP", Ins: NOP, Mode: ZeroPageX, Cycles: 4, Illegal: true},
	0xF5: {Name: "SBC", Ins: SBC, Mode: ZeroPageX, Cycles: 4},
	0xF6: {Name: "INC", Ins: INC, Mode: ZeroPageX, Cycles: 6},
	0xF7: {Name: "ISB", Ins: ISC, Mode: ZeroPageX, Cycles: 6, Illegal: true},
	0xF8: {Name: "SED", Ins: SED, Mode: Implicit, Cycles: 2},
	0xF9: {Name: "SBC", Ins: SBC, Mode: AbsoluteY, Cycles: 4},
	0xFA: {Name: "NOP", Ins: NOP, Mode: Implicit, Cycles: 2, Illegal: true},
	0xFB: {Name: "ISB", Ins: ISC, Mode: AbsoluteY, Cycles: 7, Illegal: true},
	0xFC: {Name: "NOP", Ins: NOP, Mode: AbsoluteX, Cycles: 4, Illegal: true},
	0xFD: {Name: "SBC", Ins: SBC, Mode: AbsoluteX, Cycles: 4},
	0xFE: {Name: "INC", Ins: INC, Mode: AbsoluteX, Cycles: 7},
	0xFF: {Name: "ISB", Ins: ISC, Mode: AbsoluteX, Cycles: 7, Illegal: true},
}
