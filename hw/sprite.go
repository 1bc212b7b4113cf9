package hw

// sprite is an OAM entry selected for rendering, with its pattern data.
type sprite struct {
	y, tile, attr, x uint8
	lo, hi           uint8 // pattern bytes of the row to draw
	oamIndex         int
}

// Sprite attributes bits.
const (
	sprPalette = 0b11 // palette (4 to 7) of sprite
	sprBehind  = 5    // priority (0: in front of background; 1: behind background)
	sprFlipX   = 6    // flip sprite horizontally
	sprFlipY   = 7    // flip sprite vertically
)

func (s *sprite) palette() uint8 { return s.attr & sprPalette }
func (s *sprite) behind() bool   { return s.attr&(1<<sprBehind) != 0 }
func (s *sprite) flipX() bool    { return s.attr&(1<<sprFlipX) != 0 }
func (s *sprite) flipY() bool    { return s.attr&(1<<sprFlipY) != 0 }

// patternAddr returns the address of the low pattern byte of the sprite row
// drawn on the line after scanline.
//
// 8x8 sprites use the pattern table selected by PPUCTRL. 8x16 sprites take
// the table from bit 0 of the tile index, the top half being the even tile
// and the bottom half the next one.
func (s *sprite) patternAddr(scanline, height int, table uint16) uint16 {
	row := (scanline - int(s.y)) % height
	if s.flipY() {
		row = height - 1 - row
	}

	var base uint16
	if height == 16 {
		base = 0x1000*uint16(s.tile&1) + uint16(s.tile&0xFE)<<4
		if row >= 8 {
			row += 8
		}
	} else {
		base = table + uint16(s.tile)<<4
	}
	return base + uint16(row)
}

// colorIndex returns the 2-bit color index of the sprite pixel at screen x,
// which must lie within the sprite.
func (s *sprite) colorIndex(x int) uint8 {
	col := uint(x - int(s.x))
	bit := 7 - col
	if s.flipX() {
		bit = col
	}
	return (s.hi>>bit&1)<<1 | s.lo>>bit&1
}
