package hw

// loopy is the 15-bit PPU internal VRAM address (v) or temporary address
// (t) register:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy uint16

func (l loopy) val() uint16       { return uint16(l) & 0x7FFF }
func (l loopy) coarsex() uint16   { return uint16(l) & 0x1F }
func (l loopy) coarsey() uint16   { return uint16(l) >> 5 & 0x1F }
func (l loopy) nametable() uint16 { return uint16(l) >> 10 & 0x03 }
func (l loopy) finey() uint16     { return uint16(l) >> 12 & 0x07 }
func (l loopy) high() uint8       { return uint8(l >> 8 & 0x3F) }
func (l loopy) low() uint8        { return uint8(l) }

func (l *loopy) setCoarsex(v uint16)   { *l = *l&^0x001F | loopy(v&0x1F) }
func (l *loopy) setCoarsey(v uint16)   { *l = *l&^0x03E0 | loopy(v&0x1F)<<5 }
func (l *loopy) setNametable(v uint16) { *l = *l&^0x0C00 | loopy(v&0x03)<<10 }
func (l *loopy) setFiney(v uint16)     { *l = *l&^0x7000 | loopy(v&0x07)<<12 }

// ntAddr is the address of the nametable byte of the current tile.
func (l loopy) ntAddr() uint16 {
	return 0x2000 | uint16(l)&0x0FFF
}

// atAddr is the address of the attribute byte of the current tile.
func (l loopy) atAddr() uint16 {
	return 0x23C0 | l.nametable()<<10 | (l.coarsey()>>2)<<3 | l.coarsex()>>2
}

// incX increments the coarse X scroll, switching horizontal nametable on
// overflow.
func (l *loopy) incX() {
	if l.coarsex() == 31 {
		l.setCoarsex(0)
		*l ^= 0x0400
		return
	}
	*l++
}

// incY increments the fine Y scroll, overflowing into coarse Y. Row 29 is
// the last one of a nametable, the vertical nametable is switched after it.
// Coarse Y values 30 and 31 (attribute area) wrap to 0 without switching.
func (l *loopy) incY() {
	if fy := l.finey(); fy < 7 {
		l.setFiney(fy + 1)
		return
	}
	l.setFiney(0)

	switch cy := l.coarsey(); cy {
	case 29:
		l.setCoarsey(0)
		*l ^= 0x0800
	case 31:
		l.setCoarsey(0)
	default:
		l.setCoarsey(cy + 1)
	}
}

// copyX copies the horizontal bits (coarse X and horizontal nametable) from t.
func (l *loopy) copyX(t loopy) {
	const mask = 0x041F
	*l = *l&^mask | t&mask
}

// copyY copies the vertical bits (fine Y, coarse Y and vertical nametable)
// from t.
func (l *loopy) copyY(t loopy) {
	const mask = 0x7BE0
	*l = *l&^mask | t&mask
}
