package ines

import (
	"fmt"
	"io"
	"text/tabwriter"
)

//go:generate go tool stringer -type=Mirroring,Region,ConsoleType -output=header_string.go

type Mirroring uint8

const (
	HorzMirroring Mirroring = iota
	VertMirroring
	OnlyAScreen
	OnlyBScreen
)

type Region uint8

const (
	NTSC Region = iota
	PAL
	MultiRegion
	Dendy
)

type ConsoleType uint8

const (
	NESConsole ConsoleType = iota
	VSSystem
	Playchoice10
	ExtendedConsole
)

// Header holds the decoded fields of the 16 bytes iNES/NES 2.0 header.
type Header struct {
	Raw [headerSize]byte

	NES20     bool
	Mapper    uint16
	SubMapper uint8
	Console   ConsoleType
	Region    Region
	Mirroring Mirroring
	Battery   bool

	PRGROMSize   int
	CHRROMSize   int
	PRGRAMSize   int
	PRGNVRAMSize int
	CHRRAMSize   int
	CHRNVRAMSize int
}

// HasTrainer indicates the presence of a 512 bytes trainer section.
func (hdr *Header) HasTrainer() bool {
	return hdr.Raw[6]&0x04 != 0
}

func (hdr *Header) decode(p []byte) error {
	if len(p) < headerSize {
		return fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, headerSize, len(p))
	}
	if string(p[:4]) != Magic {
		return ErrBadMagic
	}
	copy(hdr.Raw[:], p[:headerSize])
	raw := &hdr.Raw

	hdr.NES20 = raw[7]&0x0C == 0x08
	hdr.Battery = raw[6]&0x02 != 0
	hdr.Console = ConsoleType(raw[7] & 0x03)

	switch hdr.Console {
	case VSSystem, Playchoice10:
		return fmt.Errorf("%w: %s", ErrUnsupportedConsole, hdr.Console)
	case ExtendedConsole:
		if !hdr.NES20 {
			return fmt.Errorf("%w: %s", ErrUnsupportedConsole, hdr.Console)
		}
		// Extended console types are all variants we don't emulate.
		return fmt.Errorf("%w: extended type %d", ErrUnsupportedConsole, raw[13]&0x0F)
	}

	if raw[6]&0x08 != 0 {
		return ErrUnsupportedLayout
	}
	hdr.Mirroring = HorzMirroring
	if raw[6]&0x01 != 0 {
		hdr.Mirroring = VertMirroring
	}

	if hdr.NES20 {
		return hdr.decodeNES20()
	}
	hdr.decodeINES()
	return nil
}

func (hdr *Header) decodeNES20() error {
	raw := &hdr.Raw

	hdr.Mapper = uint16(raw[6]>>4) | uint16(raw[7]&0xF0) | uint16(raw[8]&0x0F)<<8
	hdr.SubMapper = raw[8] >> 4

	hdr.PRGROMSize = romSize(raw[4], raw[9]&0x0F, PRGROMPageSize)
	hdr.CHRROMSize = romSize(raw[5], raw[9]>>4, CHRROMPageSize)
	if hdr.PRGROMSize < 0 {
		return fmt.Errorf("%w: PRG-ROM exponent %d", ErrBadSize, raw[4]>>2)
	}
	if hdr.CHRROMSize < 0 {
		return fmt.Errorf("%w: CHR-ROM exponent %d", ErrBadSize, raw[5]>>2)
	}

	hdr.PRGRAMSize = ramSize(raw[10] & 0x0F)
	hdr.PRGNVRAMSize = ramSize(raw[10] >> 4)
	hdr.CHRRAMSize = ramSize(raw[11] & 0x0F)
	hdr.CHRNVRAMSize = ramSize(raw[11] >> 4)

	hdr.Region = Region(raw[12] & 0x03)
	if hdr.Region == Dendy {
		return fmt.Errorf("%w: %s", ErrUnsupportedRegion, hdr.Region)
	}
	if n := raw[14] & 0x03; n != 0 {
		return fmt.Errorf("%w: %d misc roms", ErrUnsupportedMiscROM, n)
	}
	// 0: unspecified, 1: standard controllers.
	if dev := raw[15] & 0x3F; dev > 1 {
		return fmt.Errorf("%w: 0x%02x", ErrUnsupportedInput, dev)
	}
	return nil
}

func (hdr *Header) decodeINES() {
	raw := &hdr.Raw

	// Bytes 11-15 are unused in iNES 1.0. When they're not all zero, the
	// header has probably been tagged by some old tool writing garbage in
	// bytes 7-15, so only trust bytes 4-6.
	reservedZero := raw[11]|raw[12]|raw[13]|raw[14]|raw[15] == 0

	hdr.Mapper = uint16(raw[6] >> 4)
	if reservedZero {
		hdr.Mapper |= uint16(raw[7] & 0xF0)
	}

	hdr.PRGROMSize = int(raw[4]) * PRGROMPageSize
	hdr.CHRROMSize = int(raw[5]) * CHRROMPageSize

	prgram := 0x2000
	if reservedZero {
		if raw[8] != 0 {
			prgram = int(raw[8]) * 0x2000
		}
		if raw[10]&0x10 != 0 {
			prgram = 0
		}
		if raw[9]&0x01 != 0 {
			hdr.Region = PAL
		}
	}
	if hdr.Battery {
		hdr.PRGNVRAMSize = prgram
	} else {
		hdr.PRGRAMSize = prgram
	}

	if hdr.CHRROMSize == 0 {
		hdr.CHRRAMSize = 0x2000
	}
}

// romSize decodes a NES 2.0 ROM size from its LSB byte and MSB nibble. It
// returns -1 if the size exceeds maxROMSize.
func romSize(lsb, msb uint8, pagesz int) int {
	if msb == 0x0F {
		// Exponent-multiplier notation: 2^E * (MM*2+1).
		exp := lsb >> 2
		if exp > maxROMExp {
			return -1
		}
		mult := int(lsb & 0x03)
		return (1 << exp) * (mult*2 + 1)
	}
	return (int(msb)<<8 | int(lsb)) * pagesz
}

func ramSize(shift uint8) int {
	if shift == 0 {
		return 0
	}
	return 64 << shift
}

// PrintInfos writes a human readable summary of the header to w.
func (hdr *Header) PrintInfos(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	format := "iNES"
	if hdr.NES20 {
		format = "NES 2.0"
	}
	fmt.Fprintf(tw, "Format:\t%s\n", format)
	fmt.Fprintf(tw, "Mapper:\t%d (submapper %d)\n", hdr.Mapper, hdr.SubMapper)
	fmt.Fprintf(tw, "Region:\t%s\n", hdr.Region)
	fmt.Fprintf(tw, "Mirroring:\t%s\n", hdr.Mirroring)
	fmt.Fprintf(tw, "Battery:\t%t\n", hdr.Battery)
	fmt.Fprintf(tw, "Trainer:\t%t\n", hdr.HasTrainer())
	fmt.Fprintf(tw, "PRG-ROM:\t%dKB\n", hdr.PRGROMSize/1024)
	fmt.Fprintf(tw, "CHR-ROM:\t%dKB\n", hdr.CHRROMSize/1024)
	fmt.Fprintf(tw, "PRG-RAM:\t%d bytes\n", hdr.PRGRAMSize)
	fmt.Fprintf(tw, "PRG-NVRAM:\t%d bytes\n", hdr.PRGNVRAMSize)
	fmt.Fprintf(tw, "CHR-RAM:\t%d bytes\n", hdr.CHRRAMSize)
	fmt.Fprintf(tw, "CHR-NVRAM:\t%d bytes\n", hdr.CHRNVRAMSize)
	tw.Flush()
}
