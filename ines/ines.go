// Package ines decodes NES cartridge images in the iNES and NES 2.0 file
// formats.
package ines

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const Magic = "NES\x1a"

const (
	headerSize  = 16
	trainerSize = 512

	PRGROMPageSize = 0x4000
	CHRROMPageSize = 0x2000

	// Largest exponent accepted in the NES 2.0 exponent-multiplier size
	// notation, 7<<27 still fits a 32-bit int.
	maxROMExp = 27
)

var (
	ErrBadMagic           = errors.New("not an iNES file")
	ErrTruncated          = errors.New("truncated rom")
	ErrBadSize            = errors.New("invalid rom size")
	ErrUnsupportedConsole = errors.New("unsupported console type")
	ErrUnsupportedInput   = errors.New("unsupported input device")
	ErrUnsupportedMiscROM = errors.New("unsupported miscellaneous rom")
	ErrUnsupportedLayout  = errors.New("unsupported alternative nametable layout")
	ErrUnsupportedRegion  = errors.New("unsupported region")
)

// Rom is a decoded cartridge image.
type Rom struct {
	Header

	Trainer []byte // 512 bytes if present, or empty.
	PRGROM  []byte
	CHRROM  []byte // empty when the cartridge has CHR-RAM
}

// Open loads a rom from file.
func Open(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rom := new(Rom)
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rom, nil
}

// Decode decodes a rom from a raw file buffer. The returned Rom owns copies of
// the PRG and CHR data.
func Decode(buf []byte) (*Rom, error) {
	rom := new(Rom)
	if err := rom.decode(buf); err != nil {
		return nil, err
	}
	return rom, nil
}

// ReadFrom implements io.ReaderFrom interface
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return int64(len(buf)), err
	}
	return int64(len(buf)), rom.decode(buf)
}

func (rom *Rom) decode(buf []byte) error {
	if err := rom.Header.decode(buf); err != nil {
		return err
	}

	off := headerSize
	section := func(name string, size int) ([]byte, error) {
		if size < 0 {
			return nil, fmt.Errorf("%w: %s section of %d bytes", ErrBadSize, name, size)
		}
		if len(buf)-off < size {
			return nil, fmt.Errorf("%w: incomplete %s section (want %d bytes, have %d)",
				ErrTruncated, name, size, max(len(buf)-off, 0))
		}
		b := make([]byte, size)
		copy(b, buf[off:off+size])
		off += size
		return b, nil
	}

	var err error
	if rom.HasTrainer() {
		if rom.Trainer, err = section("trainer", trainerSize); err != nil {
			return err
		}
	}
	if rom.PRGROM, err = section("PRG-ROM", rom.PRGROMSize); err != nil {
		return err
	}
	if rom.CHRROM, err = section("CHR-ROM", rom.CHRROMSize); err != nil {
		return err
	}
	return nil
}
