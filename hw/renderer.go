package hw

// bgPipeline holds the background fetch latches and shift registers.
type bgPipeline struct {
	addr   uint16 // address of the next fetch
	ntByte uint8
	atByte uint8
	lo, hi uint8 // pattern bytes of the next tile

	shiftLo, shiftHi uint16 // pattern shift registers
	atLo, atHi       uint8  // attribute shift registers
	atLatchLo        uint8  // attribute bits fed into the shift registers
	atLatchHi        uint8
}

// reload loads the next tile into the low byte of the shift registers.
func (bg *bgPipeline) reload() {
	bg.shiftLo = bg.shiftLo&0xFF00 | uint16(bg.lo)
	bg.shiftHi = bg.shiftHi&0xFF00 | uint16(bg.hi)
	bg.atLatchLo = bg.atByte & 1
	bg.atLatchHi = bg.atByte >> 1 & 1
}

func (bg *bgPipeline) shift() {
	bg.shiftLo <<= 1
	bg.shiftHi <<= 1
	bg.atLo = bg.atLo<<1 | bg.atLatchLo
	bg.atHi = bg.atHi<<1 | bg.atLatchHi
}

// pixel returns the 4-bit palette index of the background pixel, fine x
// scrolled. 0 is transparent.
func (bg *bgPipeline) pixel(finex uint8) uint8 {
	bit := 15 - uint(finex)
	p0 := uint8(bg.shiftLo>>bit) & 1
	p1 := uint8(bg.shiftHi>>bit) & 1
	pix := p1<<1 | p0
	if pix == 0 {
		return 0
	}

	abit := 7 - uint(finex)
	a0 := bg.atLo >> abit & 1
	a1 := bg.atHi >> abit & 1
	return (a1<<1|a0)<<2 | pix
}

// renderTick runs one dot of a visible or pre-render scanline.
func (p *PPU) renderTick() {
	dot := p.Dot
	prerender := p.Scanline == preRenderLine
	rendering := p.renderingEnabled()

	switch dot {
	case 1:
		p.nsecondary = 0
		if prerender {
			p.PPUSTATUS.ClearBits(1<<sprite0Hit | 1<<spriteOverflow)
		}
	case 257:
		if rendering && !prerender {
			p.evaluateSprites()
		}
	case 321:
		p.loadSprites()
	}

	if (dot >= 2 && dot <= 257) || (dot >= 322 && dot <= 337) {
		if dot <= 257 && !prerender {
			p.renderPixel(dot - 2)
		}
		p.bg.shift()
	}

	if (dot >= 1 && dot <= 257) || (dot >= 321 && dot <= 337) {
		p.fetch(dot, rendering)
	}

	if !rendering {
		return
	}
	switch {
	case dot == 256:
		p.v.incY()
	case dot == 257:
		p.v.copyX(p.t)
	case prerender && dot >= 280 && dot <= 304:
		p.v.copyY(p.t)
	}
}

// fetch runs one step of the 8-dot background fetch sequence.
func (p *PPU) fetch(dot int, rendering bool) {
	bg := &p.bg

	switch dot % 8 {
	case 1:
		bg.reload()
		bg.addr = p.v.ntAddr()
	case 2:
		bg.ntByte = p.Bus.Read8(bg.addr, false)
	case 3:
		bg.addr = p.v.atAddr()
	case 4:
		at := p.Bus.Read8(bg.addr, false)
		if p.v.coarsey()&2 != 0 {
			at >>= 4
		}
		if p.v.coarsex()&2 != 0 {
			at >>= 2
		}
		bg.atByte = at & 0b11
	case 5:
		table := uint16(0)
		if p.PPUCTRL.GetBit(backgroundAddr) {
			table = 0x1000
		}
		bg.addr = table + uint16(bg.ntByte)<<4 + p.v.finey()
	case 6:
		bg.lo = p.Bus.Read8(bg.addr, false)
	case 7:
		bg.addr += 8
	case 0:
		bg.hi = p.Bus.Read8(bg.addr, false)
		if rendering {
			p.v.incX()
		}
	}
}

// renderPixel composes the background and sprite pixels at x on the current
// scanline and writes the resulting color to the frame buffer.
func (p *PPU) renderPixel(x int) {
	var bgc uint8
	if p.PPUMASK.GetBit(showBg) && (x >= 8 || p.PPUMASK.GetBit(leftmostBg)) {
		bgc = p.bg.pixel(p.finex)
	}

	var spr spritePixel
	if p.PPUMASK.GetBit(showSprites) && (x >= 8 || p.PPUMASK.GetBit(leftmostSprites)) {
		spr = p.spritePixel(x)
	}

	bgOpaque := bgc&0b11 != 0
	if bgOpaque && spr.zeroHit {
		p.PPUSTATUS.SetBit(sprite0Hit)
	}

	var color uint8
	switch {
	case spr.color != 0 && (!spr.behind || !bgOpaque):
		color = spr.color
	case bgOpaque:
		color = bgc
	}

	// With rendering disabled, the backdrop color is shown.
	if !p.renderingEnabled() {
		color = 0
	}

	idx := p.Palette[paletteIndex(uint16(color))]
	if p.PPUMASK.GetBit(greyscale) {
		idx &= 0x30
	}

	rgb := nesPalette[idx&0x3F]
	off := p.screen.PixOffset(x, p.Scanline)
	pix := p.screen.Pix[off : off+4 : off+4]
	pix[0] = rgb.R
	pix[1] = rgb.G
	pix[2] = rgb.B
	pix[3] = 0xFF
}

// spritePixel is the result of sprite rendering at a given x.
type spritePixel struct {
	color   uint8 // 0x10 | palette<<2 | index, or 0 if transparent
	behind  bool  // sprite is behind the background
	zeroHit bool  // opaque pixel of sprite 0
}

func (p *PPU) spritePixel(x int) spritePixel {
	var px spritePixel

	// The first sprite in OAM order has priority: iterate backwards and let
	// earlier sprites overwrite later ones.
	for i := p.nsprites - 1; i >= 0; i-- {
		s := &p.sprites[i]
		if x < int(s.x) || x >= int(s.x)+8 {
			continue
		}
		idx := s.colorIndex(x)
		if idx == 0 {
			continue
		}
		px = spritePixel{
			color:   0x10 | s.palette()<<2 | idx,
			behind:  s.behind(),
			zeroHit: s.oamIndex == 0 && x != 255,
		}
	}
	return px
}

// spriteHeight returns 8 or 16.
func (p *PPU) spriteHeight() int {
	if p.PPUCTRL.GetBit(spriteSize) {
		return 16
	}
	return 8
}

// evaluateSprites selects the sprites visible on the next scanline. Since
// the Y coordinate in OAM is one less than the first line the sprite is
// drawn on, the comparison is done against the current scanline.
func (p *PPU) evaluateSprites() {
	height := p.spriteHeight()
	p.nsecondary = 0

	for i := range 64 {
		y := int(p.OAM[i*4])
		if p.Scanline < y || p.Scanline >= y+height {
			continue
		}
		if p.nsecondary == len(p.secondary) {
			p.PPUSTATUS.SetBit(spriteOverflow)
			break
		}
		p.secondary[p.nsecondary] = sprite{
			y:        p.OAM[i*4],
			tile:     p.OAM[i*4+1],
			attr:     p.OAM[i*4+2],
			x:        p.OAM[i*4+3],
			oamIndex: i,
		}
		p.nsecondary++
	}
}

// loadSprites fetches the pattern data of the sprites in secondary OAM, to
// be drawn on the next scanline.
func (p *PPU) loadSprites() {
	height := p.spriteHeight()
	table := uint16(0)
	if p.PPUCTRL.GetBit(spriteAddr) {
		table = 0x1000
	}

	p.sprites = p.secondary
	p.nsprites = p.nsecondary
	for i := range p.nsprites {
		s := &p.sprites[i]
		addr := s.patternAddr(p.Scanline, height, table)
		s.lo = p.Bus.Read8(addr, false)
		s.hi = p.Bus.Read8(addr+8, false)
	}
}

// DrawBackdrop fills the frame buffer with the backdrop color.
func (p *PPU) DrawBackdrop() {
	rgb := nesPalette[p.Palette[0]&0x3F]
	for i := 0; i < len(p.screen.Pix); i += 4 {
		p.screen.Pix[i] = rgb.R
		p.screen.Pix[i+1] = rgb.G
		p.screen.Pix[i+2] = rgb.B
		p.screen.Pix[i+3] = 0xFF
	}
}
