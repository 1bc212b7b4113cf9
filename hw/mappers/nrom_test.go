package mappers

import (
	"errors"
	"testing"

	"nescore/ines"
)

func testRom(prgsz, chrsz int) *ines.Rom {
	rom := &ines.Rom{
		PRGROM: make([]byte, prgsz),
		CHRROM: make([]byte, chrsz),
	}
	rom.PRGROMSize = prgsz
	rom.CHRROMSize = chrsz
	rom.PRGRAMSize = 0x2000
	if chrsz == 0 {
		rom.CHRRAMSize = 0x2000
	}
	for i := range rom.PRGROM {
		rom.PRGROM[i] = uint8(i >> 8)
	}
	for i := range rom.CHRROM {
		rom.CHRROM[i] = uint8(i)
	}
	return rom
}

func TestNROMPRGMirroring(t *testing.T) {
	m, err := New(testRom(0x4000, 0x2000))
	if err != nil {
		t.Fatal(err)
	}

	for _, addr := range []uint16{0x8000, 0x8123, 0xBFFF} {
		lo := m.Read8(addr, false)
		hi := m.Read8(addr+0x4000, false)
		if lo != hi {
			t.Errorf("Read8(%04X) = %02X, Read8(%04X) = %02X, want mirrored", addr, lo, addr+0x4000, hi)
		}
	}

	m, err = New(testRom(0x8000, 0x2000))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Read8(0xC000, false); got != 0x40 {
		t.Errorf("NROM-256 Read8(C000) = %02X, want 40", got)
	}
}

func TestNROMPRGRAM(t *testing.T) {
	m, err := New(testRom(0x4000, 0x2000))
	if err != nil {
		t.Fatal(err)
	}

	for addr := uint16(0x6000); addr < 0x8000; addr += 0x1FF {
		if got := m.Read8(addr, false); got != 0 {
			t.Fatalf("PRG-RAM not zeroed at %04X: %02X", addr, got)
		}
		m.Write8(addr, uint8(addr))
		if got := m.Read8(addr, false); got != uint8(addr) {
			t.Errorf("Read8(%04X) = %02X, want %02X", addr, got, uint8(addr))
		}
	}
}

func TestNROMROMWrites(t *testing.T) {
	m, err := New(testRom(0x4000, 0x2000))
	if err != nil {
		t.Fatal(err)
	}

	m.Write8(0x8001, 0xFF)
	if got := m.Read8(0x8001, false); got != 0x00 {
		t.Errorf("PRG-ROM was written: %02X", got)
	}
	m.WriteCHR(0x0010, 0xFF)
	if got := m.ReadCHR(0x0010); got != 0x10 {
		t.Errorf("CHR-ROM was written: %02X", got)
	}
	if m.Invalid() != 2 {
		t.Errorf("Invalid() = %d, want 2", m.Invalid())
	}
}

func TestNROMCHRRAM(t *testing.T) {
	m, err := New(testRom(0x4000, 0))
	if err != nil {
		t.Fatal(err)
	}

	m.WriteCHR(0x1FFF, 0xAB)
	if got := m.ReadCHR(0x1FFF); got != 0xAB {
		t.Errorf("ReadCHR(1FFF) = %02X, want AB", got)
	}
	if m.Invalid() != 0 {
		t.Errorf("Invalid() = %d, want 0", m.Invalid())
	}
}

func TestUnsupportedMapper(t *testing.T) {
	rom := testRom(0x4000, 0x2000)
	rom.Mapper = 4

	m, err := New(rom)
	if !errors.Is(err, ErrUnsupportedMapper) {
		t.Fatalf("got error %v, want %v", err, ErrUnsupportedMapper)
	}
	if m != nil {
		t.Errorf("got a non-nil mapper on error")
	}
}

func TestMapperDesc(t *testing.T) {
	m, err := New(testRom(0x4000, 0x2000))
	if err != nil {
		t.Fatal(err)
	}
	want := MapperDesc{Name: "NROM", Kind: KindNROM}
	if got := m.Desc(); got != want {
		t.Errorf("Desc() = %+v, want %+v", got, want)
	}
}
