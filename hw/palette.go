package hw

import "image/color"

// nesPalette is the 2C02 NTSC system palette.
var nesPalette = [64]color.RGBA{
	rgb(0x666666), rgb(0x002A88), rgb(0x1412A7), rgb(0x3B00A4), rgb(0x5C007E), rgb(0x6E0040), rgb(0x6C0600), rgb(0x561D00),
	rgb(0x333500), rgb(0x0B4800), rgb(0x005200), rgb(0x004F08), rgb(0x00404D), rgb(0x000000), rgb(0x000000), rgb(0x000000),
	rgb(0xADADAD), rgb(0x155FD9), rgb(0x4240FF), rgb(0x7527FE), rgb(0xA01ACC), rgb(0xB71E7B), rgb(0xB53120), rgb(0x994E00),
	rgb(0x6B6D00), rgb(0x388700), rgb(0x0C9300), rgb(0x008F32), rgb(0x007C8D), rgb(0x000000), rgb(0x000000), rgb(0x000000),
	rgb(0xFFFEFF), rgb(0x64B0FF), rgb(0x9290FF), rgb(0xC676FF), rgb(0xF36AFF), rgb(0xFE6ECC), rgb(0xFE8170), rgb(0xEA9E22),
	rgb(0xBCBE00), rgb(0x88D800), rgb(0x5CE430), rgb(0x45E082), rgb(0x48CDDE), rgb(0x4F4F4F), rgb(0x000000), rgb(0x000000),
	rgb(0xFFFEFF), rgb(0xC0DFFF), rgb(0xD3D2FF), rgb(0xE8C8FF), rgb(0xFBC2FF), rgb(0xFEC4EA), rgb(0xFECCC5), rgb(0xF7D8A5),
	rgb(0xE4E594), rgb(0xCFEF96), rgb(0xBDF4AB), rgb(0xB3F3CC), rgb(0xB5EBF2), rgb(0xB8B8B8), rgb(0x000000), rgb(0x000000),
}

func rgb(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}

// SystemColor returns the RGB color of a palette entry.
func SystemColor(idx uint8) color.RGBA {
	return nesPalette[idx&0x3F]
}
