package hw

import (
	"nescore/emu/log"
)

// CPU memory map:
//
//	$0000-$07FF	2KB internal RAM
//	$0800-$1FFF	mirrors of $0000-$07FF
//	$2000-$2007	PPU registers
//	$2008-$3FFF	mirrors of $2000-$2007, every 8 bytes
//	$4000-$4013	APU registers (not emulated)
//	$4014		OAM DMA
//	$4015		APU status (not emulated)
//	$4016		joypad strobe, joypad 1 data
//	$4017		joypad 2 data, APU frame counter (writes)
//	$4018-$401F	APU and I/O test mode
//	$4020-$FFFF	cartridge space

// Read8 reads a byte from the CPU address space. Peek reads have no side
// effects and are never logged.
func (m *Machine) Read8(addr uint16, peek bool) uint8 {
	switch {
	case addr < 0x2000:
		return m.RAM.Read8(addr&0x07FF, peek)
	case addr < 0x4000:
		return m.ppu.Reg(addr).Read8(addr, peek)
	case addr == 0x4014:
		return m.dma.OAMDMA.Read8(addr, peek)
	case addr == 0x4016:
		return m.input.In.Read8(addr, peek)
	case addr == 0x4017:
		return m.input.Out.Read8(addr, peek)
	case addr < 0x4020:
		if !peek {
			log.ModMem.DebugZ("read from unmapped APU register").Hex16("addr", addr).End()
		}
		return 0
	}
	return m.mapper.Read8(addr, peek)
}

// Write8 writes a byte to the CPU address space.
func (m *Machine) Write8(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		m.RAM.Write8(addr&0x07FF, val)
	case addr < 0x4000:
		m.ppu.Reg(addr).Write8(addr, val)
	case addr == 0x4014:
		m.dma.OAMDMA.Write8(addr, val)
	case addr == 0x4016:
		m.input.In.Write8(addr, val)
	case addr < 0x4020:
		log.ModMem.DebugZ("write to unmapped APU register").
			Hex16("addr", addr).
			Hex8("val", val).
			End()
	default:
		m.mapper.Write8(addr, val)
	}
}

// Peek8 is a convenience function.
func (m *Machine) Peek8(addr uint16) uint8 {
	return m.Read8(addr, true)
}

// InvalidAccesses returns the number of invalid bus accesses seen since
// power-up: writes to read-only registers or ROM, reads from write-only
// registers.
func (m *Machine) InvalidAccesses() int {
	n := m.dma.OAMDMA.Invalid + m.input.In.Invalid + m.input.Out.Invalid
	for _, reg := range m.ppu.regs() {
		n += reg.Invalid
	}
	return n + m.mapper.Invalid()
}
