package mappers

import (
	"nescore/hw/hwio"
	"nescore/ines"
)

var NROM = MapperDesc{
	Name: "NROM",
	Kind: KindNROM,
}

// nrom has no bank switching. The 16KB (NROM-128) or 32KB (NROM-256) of
// PRG-ROM are mapped at $8000, the smaller being mirrored at $C000.
type nrom struct {
	PRGRAM hwio.Mem // $6000-$7FFF
	PRGROM hwio.Mem // $8000-$FFFF
	CHR    hwio.Mem // PPU $0000-$1FFF
}

func newNROM(rom *ines.Rom) *nrom {
	m := &nrom{
		PRGRAM: hwio.Mem{
			Name: "PRGRAM",
			Data: make([]byte, rom.PRGRAMSize+rom.PRGNVRAMSize),
		},
		PRGROM: hwio.Mem{
			Name:  "PRGROM",
			Data:  rom.PRGROM,
			Flags: hwio.MemFlag8ReadOnly,
		},
	}

	if len(rom.CHRROM) != 0 {
		m.CHR = hwio.Mem{
			Name:  "CHRROM",
			Data:  rom.CHRROM,
			Flags: hwio.MemFlag8ReadOnly,
		}
	} else {
		size := rom.CHRRAMSize + rom.CHRNVRAMSize
		if size == 0 {
			size = 0x2000
		}
		m.CHR = hwio.Mem{
			Name: "CHRRAM",
			Data: make([]byte, size),
		}
	}
	return m
}

func (m *nrom) read8(addr uint16, peek bool) uint8 {
	switch {
	case addr >= 0x8000:
		return m.PRGROM.Read8(addr-0x8000, peek)
	case addr >= 0x6000:
		return m.PRGRAM.Read8(addr-0x6000, peek)
	}

	if !peek {
		modMapper.DebugZ("read from unmapped expansion area").Hex16("addr", addr).End()
	}
	return 0
}

func (m *nrom) write8(addr uint16, val uint8) {
	switch {
	case addr >= 0x8000:
		m.PRGROM.Write8(addr-0x8000, val)
	case addr >= 0x6000:
		m.PRGRAM.Write8(addr-0x6000, val)
	default:
		modMapper.DebugZ("write to unmapped expansion area").Hex16("addr", addr).Hex8("val", val).End()
	}
}
