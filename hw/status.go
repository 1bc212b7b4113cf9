package hw

// P is the processor status register.
type P uint8

const (
	Carry P = 1 << iota
	Zero
	Interrupt
	Decimal // unused on the NES
	Break
	Reserved
	Overflow
	Negative
)

// power-up status: interrupts disabled, reserved bit set.
const powerUpStatus = Interrupt | Reserved

func (p P) String() string {
	const bits = "nvubdizcNVUBDIZC"

	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		ibit := (uint8(p) & (1 << (7 - i))) >> (7 - i)
		s[i] = bits[i+int(8*ibit)]
	}
	return string(s)
}

func (p P) has(flag P) bool {
	return p&flag == flag
}

func (p *P) set(flag P) {
	*p |= flag
}

func (p *P) clear(flag P) {
	*p &^= flag
}

func (p *P) setTo(flag P, b bool) {
	if b {
		p.set(flag)
	} else {
		p.clear(flag)
	}
}

// checkNZ sets N and Z according to v.
func (p *P) checkNZ(v uint8) {
	p.setTo(Negative, v&0x80 != 0)
	p.setTo(Zero, v == 0)
}

func (p P) carry() uint8 {
	return uint8(p & Carry)
}
