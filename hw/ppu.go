package hw

import (
	"image"

	"nescore/hw/hwio"
	"nescore/ines"
)

const (
	NumScanlines = 262 // Number of scanlines per frame.
	NumDots      = 341 // Number of PPU dots per scanline.

	ScreenWidth  = 256
	ScreenHeight = 240

	preRenderLine = 261
	vblankLine    = 241
)

// CHRMapper is the cartridge side of the PPU bus.
type CHRMapper interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, val uint8)
	Mirroring() ines.Mirroring
}

// PPU is the NES 2C02 picture processing unit.
//
// The PPU is advanced one dot at a time with Tick. Its CPU-facing registers
// are memory-mapped from $2000 to $2007, see Reg.
type PPU struct {
	Bus *hwio.Table // PPU bus

	// CPU-exposed memory-mapped registers.
	PPUCTRL   hwio.Reg8 // $2000
	PPUMASK   hwio.Reg8 // $2001
	PPUSTATUS hwio.Reg8 // $2002
	OAMADDR   hwio.Reg8 // $2003
	OAMDATA   hwio.Reg8 // $2004
	PPUSCROLL hwio.Reg8 // $2005
	PPUADDR   hwio.Reg8 // $2006
	PPUDATA   hwio.Reg8 // $2007

	Scanline int   // Current scanline, 0-261
	Dot      int   // Current dot in scanline, 0-340
	Frame    int64 // Number of completed frames

	OAM        [256]uint8
	Palette    [32]uint8
	NameTables [0x800]uint8

	// Internal registers.
	v, t       loopy
	finex      uint8
	writeLatch bool
	dataBuf    uint8 // PPUDATA read buffer

	nmiPending bool

	bg         bgPipeline
	secondary  [8]sprite // secondary OAM, sprites selected for the next scanline
	nsecondary int
	sprites    [8]sprite // sprites drawn on the current scanline
	nsprites   int

	screen *image.RGBA
}

// regs returns the CPU-facing registers, indexed by address.
func (p *PPU) regs() [8]*hwio.Reg8 {
	return [8]*hwio.Reg8{
		&p.PPUCTRL, &p.PPUMASK, &p.PPUSTATUS, &p.OAMADDR,
		&p.OAMDATA, &p.PPUSCROLL, &p.PPUADDR, &p.PPUDATA,
	}
}

// Reg returns the register mapped at addr, which is mirrored every 8 bytes
// in $2000-$3FFF.
func (p *PPU) Reg(addr uint16) *hwio.Reg8 {
	return p.regs()[addr&7]
}

func NewPPU(chr CHRMapper) *PPU {
	p := &PPU{
		Bus:    hwio.NewTable("ppu"),
		screen: image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
	}
	p.initRegs()
	p.initBus(chr)
	return p
}

func (p *PPU) initRegs() {
	p.PPUCTRL = hwio.Reg8{Name: "PPUCTRL", Flags: hwio.WriteOnlyFlag, WriteCb: p.WriteCtrl}
	p.PPUMASK = hwio.Reg8{Name: "PPUMASK", Flags: hwio.WriteOnlyFlag, WriteCb: p.WriteMask}
	p.PPUSTATUS = hwio.Reg8{Name: "PPUSTATUS", Flags: hwio.ReadOnlyFlag, ReadCb: p.ReadStatus}
	p.OAMADDR = hwio.Reg8{Name: "OAMADDR", Flags: hwio.WriteOnlyFlag, WriteCb: p.WriteOAMAddr}
	p.OAMDATA = hwio.Reg8{Name: "OAMDATA", ReadCb: p.ReadOAMData, PeekCb: p.peekOAMData, WriteCb: p.WriteOAMData}
	p.PPUSCROLL = hwio.Reg8{Name: "PPUSCROLL", Flags: hwio.WriteOnlyFlag, WriteCb: p.WriteScroll}
	p.PPUADDR = hwio.Reg8{Name: "PPUADDR", Flags: hwio.WriteOnlyFlag, WriteCb: p.WriteAddr}
	p.PPUDATA = hwio.Reg8{Name: "PPUDATA", ReadCb: p.ReadData, PeekCb: p.peekData, WriteCb: p.WriteData}
}

// initBus maps the PPU address space:
//
//	$0000-$1FFF	pattern tables (cartridge CHR)
//	$2000-$2FFF	nametables, mirrored according to the cartridge
//	$3000-$3EFF	mirrors of $2000-$2EFF
//	$3F00-$3FFF	palette RAM indexes, mirrored every 32 bytes
func (p *PPU) initBus(chr CHRMapper) {
	p.Bus.Map(0x0000, 0x1FFF, &hwio.Device{
		Name:    "CHR",
		ReadCb:  chr.ReadCHR,
		PeekCb:  chr.ReadCHR,
		WriteCb: chr.WriteCHR,
	})

	ntA := p.NameTables[:0x400]
	ntB := p.NameTables[0x400:]

	var nts [4][]uint8
	switch chr.Mirroring() {
	case ines.HorzMirroring:
		nts = [4][]uint8{ntA, ntA, ntB, ntB}
	case ines.VertMirroring:
		nts = [4][]uint8{ntA, ntB, ntA, ntB}
	case ines.OnlyAScreen:
		nts = [4][]uint8{ntA, ntA, ntA, ntA}
	case ines.OnlyBScreen:
		nts = [4][]uint8{ntB, ntB, ntB, ntB}
	}

	for i, nt := range nts {
		base := 0x2000 + uint16(i)*0x400
		p.Bus.MapMemorySlice(base, base+0x3FF, nt, false)
		if i < 3 {
			p.Bus.MapMemorySlice(base+0x1000, base+0x13FF, nt, false)
		}
	}
	p.Bus.MapMemorySlice(0x3C00, 0x3EFF, nts[3], false)

	p.Bus.Map(0x3F00, 0x3FFF, &hwio.Device{
		Name:    "PALETTE",
		ReadCb:  p.readPalette,
		PeekCb:  p.readPalette,
		WriteCb: p.writePalette,
	})
}

// Reset puts the PPU back in its power-up state. Nametables, palette and
// OAM are left untouched.
func (p *PPU) Reset() {
	p.PPUCTRL.Value = 0
	p.PPUMASK.Value = 0
	p.PPUSTATUS.Value = 0
	p.OAMADDR.Value = 0
	p.Scanline = 0
	p.Dot = 0
	p.Frame = 0
	p.v, p.t = 0, 0
	p.finex = 0
	p.writeLatch = false
	p.dataBuf = 0
	p.nmiPending = false
	p.bg = bgPipeline{}
	p.nsecondary = 0
	p.nsprites = 0
}

// Output returns the frame buffer.
func (p *PPU) Output() *image.RGBA {
	return p.screen
}

// NMIPending reports whether the PPU raised an NMI that hasn't been
// serviced yet.
func (p *PPU) NMIPending() bool {
	return p.nmiPending
}

// takeNMI acknowledges a pending NMI.
func (p *PPU) takeNMI() bool {
	pending := p.nmiPending
	p.nmiPending = false
	return pending
}

func (p *PPU) renderingEnabled() bool {
	return p.PPUMASK.GetBit(showBg) || p.PPUMASK.GetBit(showSprites)
}

// Tick advances the PPU by one dot.
func (p *PPU) Tick() {
	switch {
	case p.Scanline < ScreenHeight:
		p.renderTick()
	case p.Scanline == vblankLine:
		if p.Dot == 1 {
			p.PPUSTATUS.SetBit(vblank)
			if p.PPUCTRL.GetBit(nmi) {
				p.nmiPending = true
			}
		}
	case p.Scanline == preRenderLine:
		if p.Dot == 1 {
			p.PPUSTATUS.ClearBit(vblank)
		}
		p.renderTick()
	}
	p.advance()
}

func (p *PPU) advance() {
	p.Dot++

	// On odd frames with rendering enabled, the last dot of the pre-render
	// line is skipped.
	if p.Scanline == preRenderLine && p.Dot == NumDots-1 && p.Frame&1 == 1 && p.renderingEnabled() {
		p.Dot++
	}

	if p.Dot < NumDots {
		return
	}
	p.Dot = 0
	p.Scanline++
	if p.Scanline == NumScanlines {
		p.Scanline = 0
		p.Frame++
	}
}

/* palette */

// paletteIndex maps a palette address to the palette RAM index. $3F10,
// $3F14, $3F18 and $3F1C mirror $3F00, $3F04, $3F08 and $3F0C.
func paletteIndex(addr uint16) uint16 {
	i := addr & 0x1F
	if i&0x13 == 0x10 {
		i &^= 0x10
	}
	return i
}

func (p *PPU) readPalette(addr uint16) uint8 {
	return p.Palette[paletteIndex(addr)]
}

func (p *PPU) writePalette(addr uint16, val uint8) {
	p.Palette[paletteIndex(addr)] = val
}
