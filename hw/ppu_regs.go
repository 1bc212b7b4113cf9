package hw

import (
	"nescore/emu/log"
	"nescore/hw/hwio"
)

// PPUCTRL bits
const (
	ntselect       = 0b11 // base nametable address mask
	vramIncr       = 2    // VRAM address increment (0: +1; 1: +32)
	spriteAddr     = 3    // sprite pattern table for 8x8 sprites
	backgroundAddr = 4    // background pattern table
	spriteSize     = 5    // 0: 8x8; 1: 8x16
	nmi            = 7    // generate NMI at start of vblank
)

// PPUMASK bits
const (
	greyscale       = 0
	leftmostBg      = 1
	leftmostSprites = 2
	showBg          = 3
	showSprites     = 4
)

// PPUSTATUS bits
const (
	spriteOverflow = 5
	sprite0Hit     = 6
	vblank         = 7
)

// WriteCtrl handles writes to PPUCTRL ($2000).
func (p *PPU) WriteCtrl(old, val uint8) {
	log.ModPPU.DebugZ("Write to PPUCTRL").Hex8("val", val).End()

	// Enabling NMI while already in vblank raises one immediately.
	if !hwio.GetBit8(old, nmi) && hwio.GetBit8(val, nmi) && p.PPUSTATUS.GetBit(vblank) {
		p.nmiPending = true
	}

	p.t.setNametable(uint16(val & ntselect))
}

// WriteMask handles writes to PPUMASK ($2001).
func (p *PPU) WriteMask(old, val uint8) {
	log.ModPPU.DebugZ("Write to PPUMASK").Hex8("val", val).End()
}

// ReadStatus handles reads from PPUSTATUS ($2002). It clears the vblank
// flag and resets the write latch.
func (p *PPU) ReadStatus(val uint8) uint8 {
	ret := val & (1<<vblank | 1<<sprite0Hit | 1<<spriteOverflow)
	p.PPUSTATUS.ClearBit(vblank)
	p.writeLatch = false
	return ret
}

// WriteOAMAddr handles writes to OAMADDR ($2003). The value stays in the
// register.
func (p *PPU) WriteOAMAddr(old, val uint8) {}

// ReadOAMData handles reads from OAMDATA ($2004).
func (p *PPU) ReadOAMData(uint8) uint8 {
	return p.OAM[p.OAMADDR.Value]
}

func (p *PPU) peekOAMData(uint8) uint8 {
	return p.OAM[p.OAMADDR.Value]
}

// WriteOAMData handles writes to OAMDATA ($2004), incrementing OAMADDR.
func (p *PPU) WriteOAMData(old, val uint8) {
	p.OAM[p.OAMADDR.Value] = val
	p.OAMADDR.Value++
}

// WriteScroll handles writes to PPUSCROLL ($2005). First write is X, second
// is Y.
func (p *PPU) WriteScroll(old, val uint8) {
	log.ModPPU.DebugZ("Write to PPUSCROLL").Hex8("val", val).Bool("latch", p.writeLatch).End()

	if !p.writeLatch {
		p.finex = val & 0b111
		p.t.setCoarsex(uint16(val >> 3))
	} else {
		p.t.setFiney(uint16(val & 0b111))
		p.t.setCoarsey(uint16(val >> 3))
	}
	p.writeLatch = !p.writeLatch
}

// WriteAddr handles writes to PPUADDR ($2006). First write is the high
// byte, second the low byte, after which t is copied into v.
func (p *PPU) WriteAddr(old, val uint8) {
	if !p.writeLatch {
		p.t = p.t&0x00FF | loopy(val&0x3F)<<8
	} else {
		p.t = p.t&0xFF00 | loopy(val)
		p.v = p.t
	}
	p.writeLatch = !p.writeLatch
}

// ReadData handles reads from PPUDATA ($2007).
func (p *PPU) ReadData(uint8) uint8 {
	addr := p.v.val() & 0x3FFF

	var val uint8
	if addr < 0x3F00 {
		// VRAM reads are delayed: the buffered value is returned and the
		// buffer refilled.
		val = p.dataBuf
		p.dataBuf = p.Bus.Read8(addr, false)
	} else {
		// Palette reads are immediate, they still refill the buffer.
		val = p.Bus.Read8(addr, false)
		p.dataBuf = val
	}

	log.ModPPU.DebugZ("VRAM read").Hex16("addr", addr).Hex8("val", val).End()
	p.incVRAMAddr()
	return val
}

func (p *PPU) peekData(uint8) uint8 {
	addr := p.v.val() & 0x3FFF
	if addr < 0x3F00 {
		return p.dataBuf
	}
	return p.Bus.Peek8(addr)
}

// WriteData handles writes to PPUDATA ($2007).
func (p *PPU) WriteData(old, val uint8) {
	addr := p.v.val() & 0x3FFF
	log.ModPPU.DebugZ("VRAM write").Hex16("addr", addr).Hex8("val", val).End()

	p.Bus.Write8(addr, val)
	p.incVRAMAddr()
}

// incVRAMAddr increments v after each PPUDATA access.
func (p *PPU) incVRAMAddr() {
	incr := loopy(1)
	if p.PPUCTRL.GetBit(vramIncr) {
		incr = 32
	}
	p.v = (p.v + incr) & 0x7FFF
}
