package ines

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/tests"
)

// buildRom returns a rom image with the given header, followed by trainer,
// PRG and CHR sections filled with recognizable patterns.
func buildRom(hdr [16]byte, prgsz, chrsz int) []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write(hdr[:])
	if hdr[6]&0x04 != 0 {
		buf.Write(bytes.Repeat([]byte{0xEE}, trainerSize))
	}
	for i := range prgsz {
		buf.WriteByte(uint8(i))
	}
	buf.Write(bytes.Repeat([]byte{0xCC}, chrsz))
	return buf.Bytes()
}

func header(b ...byte) [16]byte {
	var hdr [16]byte
	copy(hdr[:], Magic)
	copy(hdr[4:], b)
	return hdr
}

func TestDecodeINES(t *testing.T) {
	hdr := header(2, 1, 0x01|0x10, 0x20)
	rom, err := Decode(buildRom(hdr, 2*PRGROMPageSize, CHRROMPageSize))
	if err != nil {
		t.Fatal(err)
	}

	want := Header{
		Raw:        hdr,
		Mapper:     0x21,
		Mirroring:  VertMirroring,
		PRGROMSize: 0x8000,
		CHRROMSize: 0x2000,
		PRGRAMSize: 0x2000,
	}
	if diff := cmp.Diff(want, rom.Header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if len(rom.PRGROM) != 0x8000 || rom.PRGROM[1] != 1 {
		t.Errorf("bad PRG-ROM section")
	}
	if len(rom.CHRROM) != 0x2000 || rom.CHRROM[0] != 0xCC {
		t.Errorf("bad CHR-ROM section")
	}
}

func TestDecodeTrainerAndCHRRAM(t *testing.T) {
	hdr := header(1, 0, 0x04|0x02)
	rom, err := Decode(buildRom(hdr, PRGROMPageSize, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(rom.Trainer) != trainerSize || rom.Trainer[0] != 0xEE {
		t.Errorf("bad trainer section")
	}
	if rom.PRGROM[0] != 0 || rom.PRGROM[0xFF] != 0xFF {
		t.Errorf("PRG-ROM doesn't start after the trainer")
	}
	if rom.CHRRAMSize != 0x2000 {
		t.Errorf("CHRRAMSize = %d, want 8192", rom.CHRRAMSize)
	}
	if !rom.Battery || rom.PRGNVRAMSize != 0x2000 || rom.PRGRAMSize != 0 {
		t.Errorf("battery-backed ram: got %+v", rom.Header)
	}
	if rom.Mirroring != HorzMirroring {
		t.Errorf("Mirroring = %s, want %s", rom.Mirroring, HorzMirroring)
	}
}

func TestDecodeINESGarbageHeader(t *testing.T) {
	hdr := header(1, 1, 0x00, 0xF0, 4)
	copy(hdr[11:], "Dude!")
	rom, err := Decode(buildRom(hdr, PRGROMPageSize, CHRROMPageSize))
	if err != nil {
		t.Fatal(err)
	}
	if rom.Mapper != 0 {
		t.Errorf("Mapper = %d, want 0", rom.Mapper)
	}
	if rom.PRGRAMSize != 0x2000 {
		t.Errorf("PRGRAMSize = %d, want 8192", rom.PRGRAMSize)
	}
}

func TestDecodeNES20(t *testing.T) {
	hdr := header(
		1<<2|1, // PRG-ROM: 2^1 * 3
		2,      // CHR-ROM: 2 pages
		0x00,   // horizontal mirroring
		0x08,   // NES 2.0
		0x31,   // submapper 3, mapper high nibble 1
		0x0F,   // PRG-ROM exponent notation
		0x17,   // PRG-RAM 64<<7, PRG-NVRAM 64<<1
		0x70,   // CHR-NVRAM 64<<7
		0x01,   // PAL
		0x00, 0x00, 0x01)
	rom, err := Decode(buildRom(hdr, 6, 2*CHRROMPageSize))
	if err != nil {
		t.Fatal(err)
	}

	want := Header{
		Raw:          hdr,
		NES20:        true,
		Mapper:       0x100,
		SubMapper:    3,
		Region:       PAL,
		PRGROMSize:   6,
		CHRROMSize:   0x4000,
		PRGRAMSize:   0x2000,
		PRGNVRAMSize: 128,
		CHRNVRAMSize: 0x2000,
	}
	if diff := cmp.Diff(want, rom.Header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestRomSize(t *testing.T) {
	tests := []struct {
		lsb, msb uint8
		pagesz   int
		want     int
	}{
		{lsb: 2, msb: 0, pagesz: PRGROMPageSize, want: 0x8000},
		{lsb: 0, msb: 1, pagesz: CHRROMPageSize, want: 256 * CHRROMPageSize},
		{lsb: 0x14<<2 | 0, msb: 0xF, want: 1 << 20},
		{lsb: 0x0A<<2 | 3, msb: 0xF, want: 1024 * 7},
		{lsb: maxROMExp<<2 | 3, msb: 0xF, want: 7 << maxROMExp},
		{lsb: 0xFC, msb: 0xF, want: -1},
		{lsb: 0xFB, msb: 0xF, want: -1},
	}
	for _, tt := range tests {
		if got := romSize(tt.lsb, tt.msb, tt.pagesz); got != tt.want {
			t.Errorf("romSize(%02x, %x) = %d, want %d", tt.lsb, tt.msb, got, tt.want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	nes20 := func(b12, b13, b14, b15 byte) [16]byte {
		hdr := header(1, 1, 0, 0x08)
		hdr[12], hdr[13], hdr[14], hdr[15] = b12, b13, b14, b15
		return hdr
	}

XX, []byte("NES\x1a"), ErrTruncated},
		{"bad magic", buildRom([16]byte{'N', 'E', 'Z', 0x1a}, 0, 0), ErrBadMagic},
		{"truncated prg", buildRom(header(2, 0), PRGROMPageSize, 0), ErrTruncated},
		{"truncated chr", buildRom(header(1, 1), PRGROMPageSize, 10), ErrTruncated},
		{"vs system", buildRom(header(1, 1, 0, 0x01), 0, 0), ErrUnsupportedConsole},
		{"playchoice", buildRom(header(1, 1, 0, 0x02), 0, 0), ErrUnsupportedConsole},
		{"extended console", buildRom(header(1, 1, 0, 0x0B), 0, 0), ErrUnsupportedConsole},
		{"four screen", buildRom(header(1, 1, 0x08), 0, 0), ErrUnsupportedLayout},
		{"dendy", buildRom(nes20(3, 0, 0, 0), PRGROMPageSize, CHRROMPageSize), ErrUnsupportedRegion},
		{"misc rom", buildRom(nes20(0, 0, 1, 0), PRGROMPageSize, CHRROMPageSize), ErrUnsupportedMiscROM},
		{"zapper", buildRom(nes20(0, 0, 0, 0x08), PRGROMPageSize, CHRROMPageSize), ErrUnsupportedInput},
		{"huge prg exponent", buildRom(hugeSize(0xFC, 0x0F), 0, 0), ErrBadSize},
		{"huge prg exponent odd multiplier", buildRom(hugeSize(0xFB, 0x0F), 0, 0), ErrBadSize},
		{"huge chr exponent", buildRom(hugeSize(0xFC, 0xF0), PRGROMPageSize, 0), ErrBadSize},
		{"large prg exponent", buildRom(hugeSize(0xF8, 0x0F), 0, 0), ErrBadSize},
		{"prg beyond file", buildRom(hugeSize(maxROMExp<<2, 0x0F), 0, 0), ErrTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.rom)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRomOpen(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test requiring the test roms")
	}

	dir := filepath.Join(tests.RomsPath(t), "instr_test-v5", "rom_singles")
	paths := []string{
		"01-basics.nes",
		"02-implied.nes",
		"10-branches.nes",
		"15-brk.nes",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rom, err := Open(filepath.Join(dir, path))
			if err != nil {
				t.Fatal(err)
			}
			if len(rom.PRGROM) != rom.PRGROMSize {
				t.Errorf("PRG-ROM is %d bytes, header says %d", len(rom.PRGROM), rom.PRGROMSize)
			}
			if testing.Verbose() {
				var buf bytes.Buffer
				rom.PrintInfos(&buf)
				t.Logf("\n%s", buf.String())
			}
		})
	}
}
