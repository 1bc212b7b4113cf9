package mappers

import (
	"errors"
	"fmt"

	"nescore/emu/log"
	"nescore/ines"
)

var modMapper = log.NewModule("mapper")

var ErrUnsupportedMapper = errors.New("unsupported mapper")

// Kind identifies a mapper implementation.
type Kind uint8

const (
	KindNROM Kind = iota
)

type MapperDesc struct {
	Name string
	Kind Kind
}

// All maps iNES mapper numbers to the mappers we support.
var All = map[uint16]MapperDesc{
	0: NROM,
}

// New creates the mapper for the given rom. It fails if the mapper is not
// supported or if the rom content is not suitable for it.
func New(rom *ines.Rom) (*Mapper, error) {
	desc, ok := All[rom.Mapper]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, rom.Mapper)
	}
	if len(rom.PRGROM) == 0 {
		return nil, fmt.Errorf("mapper %s: empty PRG-ROM", desc.Name)
	}

	m := &Mapper{desc: desc, mirroring: rom.Mirroring}
	switch desc.Kind {
	case KindNROM:
		m.nrom = newNROM(rom)
	}

	modMapper.InfoZ("cartridge loaded").
		String("mapper", desc.Name).
		Int("prgrom", len(rom.PRGROM)).
		Int("chrrom", len(rom.CHRROM)).
		Stringer("mirroring", rom.Mirroring).
		End()
	return m, nil
}

// Mapper is the cartridge hardware sitting behind the CPU bus range
// $4020-$FFFF and the PPU pattern tables range $0000-$1FFF.
//
// It's a closed set of implementations dispatched on the mapper kind.
type Mapper struct {
	desc      MapperDesc
	mirroring ines.Mirroring

	nrom *nrom
}

func (m *Mapper) Desc() MapperDesc { return m.desc }

// Mirroring returns the current nametable mirroring.
func (m *Mapper) Mirroring() ines.Mirroring { return m.mirroring }

// Read8 reads from CPU address space.
func (m *Mapper) Read8(addr uint16, peek bool) uint8 {
	switch m.desc.Kind {
	case KindNROM:
		return m.nrom.read8(addr, peek)
	}
	panic(m.unknownKind())
}

// Write8 writes to CPU address space.
func (m *Mapper) Write8(addr uint16, val uint8) {
	switch m.desc.Kind {
	case KindNROM:
		m.nrom.write8(addr, val)
		return
	}
	panic(m.unknownKind())
}

// ReadCHR reads from the PPU pattern tables.
func (m *Mapper) ReadCHR(addr uint16) uint8 {
	switch m.desc.Kind {
	case KindNROM:
		return m.nrom.CHR.Read8(addr&0x1FFF, false)
	}
	panic(m.unknownKind())
}

// WriteCHR writes to the PPU pattern tables.
func (m *Mapper) WriteCHR(addr uint16, val uint8) {
	switch m.desc.Kind {
	case KindNROM:
		m.nrom.CHR.Write8(addr&0x1FFF, val)
		return
	}
	panic(m.unknownKind())
}

// Invalid returns the number of invalid accesses (writes to ROM) the
// cartridge has seen.
func (m *Mapper) Invalid() int {
	switch m.desc.Kind {
	case KindNROM:
		return m.nrom.PRGROM.Invalid + m.nrom.CHR.Invalid
	}
	panic(m.unknownKind())
}

func (m *Mapper) unknownKind() string {
	return fmt.Sprintf("mapper %s: unknown kind %d", m.desc.Name, m.desc.Kind)
}
