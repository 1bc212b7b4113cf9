package hwio

// Reg8 is an 8-bit memory-mapped register.
//
// Accesses violating Flags (write to a read-only register, read from a
// write-only one) are logged, counted in Invalid, and otherwise ignored.
// Invalid reads return 0.
type Reg8 struct {
	Name   string
	Value  uint8
	RoMask uint8 // bits set here are not modified by writes

	Flags   RWFlags
	ReadCb  func(val uint8) uint8
	PeekCb  func(val uint8) uint8
	WriteCb func(old, val uint8)

	Invalid int // number of invalid accesses
}

func (reg *Reg8) Write8(addr uint16, val uint8) {
	if reg.Flags&ReadOnlyFlag != 0 {
		reg.Invalid++
		reportInvalid("write to read-only register", reg.Name, addr)
		return
	}

	old := reg.Value
	reg.Value = old&reg.RoMask | val&^reg.RoMask
	if reg.WriteCb != nil {
		reg.WriteCb(old, reg.Value)
	}
}

// Read8 reads the register value. When peek is true the read has no side
// effect: ReadCb is not called and invalid accesses are not reported.
func (reg *Reg8) Read8(addr uint16, peek bool) uint8 {
	if peek {
		return reg.Peek8(addr)
	}
	if reg.Flags&WriteOnlyFlag != 0 {
		reg.Invalid++
		reportInvalid("read from write-only register", reg.Name, addr)
		return 0
	}
	if reg.ReadCb != nil {
		return reg.ReadCb(reg.Value)
	}
	return reg.Value
}

func (reg *Reg8) Peek8(uint16) uint8 {
	switch {
	case reg.Flags&WriteOnlyFlag != 0:
		return 0
	case reg.PeekCb != nil:
		return reg.PeekCb(reg.Value)
	}
	return reg.Value
}

func (reg *Reg8) GetBit(n uint) bool   { return GetBit8(reg.Value, n) }
func (reg *Reg8) SetBit(n uint)        { SetBit8(&reg.Value, n) }
func (reg *Reg8) ClearBit(n uint)      { ClearBit8(&reg.Value, n) }
func (reg *Reg8) ClearBits(mask uint8) { reg.Value &^= mask }
