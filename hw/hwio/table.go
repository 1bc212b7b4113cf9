package hwio

import (
	"fmt"

	"nescore/emu/log"
)

type BankIO8 interface {
	// Read8 reads a byte from the given address. If peek is true, the read
	// shouldn't have any side effects (debugging/tracing).
	Read8(addr uint16, peek bool) uint8
	Write8(addr uint16, val uint8)
}

// Read16 reads a little-endian word at addr and addr+1.
func Read16(b BankIO8, addr uint16) uint16 {
	return uint16(b.Read8(addr, false)) | uint16(b.Read8(addr+1, false))<<8
}

// Write16 writes a little-endian word at addr and addr+1.
func Write16(b BankIO8, addr uint16, val uint16) {
	b.Write8(addr, uint8(val))
	b.Write8(addr+1, uint8(val>>8))
}

// Table is an address space made of 256-byte pages, each page being
// forwarded to the BankIO8 mapped on it. A BankIO8 receives the full
// address, so the same bank mapped on several ranges mirrors itself.
type Table struct {
	Name string

	pages [256]BankIO8
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

// pageRange returns the first and last pages of the inclusive address range
// [begin, end], which must be page aligned.
func pageRange(begin, end uint16) (first, last int) {
	if begin&0xFF != 0 || end&0xFF != 0xFF || begin > end {
		panic(fmt.Sprintf("hwio: range [%04x-%04x] is not page aligned", begin, end))
	}
	return int(begin >> 8), int(end >> 8)
}

// Map maps io on [begin, end]. Pages already mapped are replaced.
func (t *Table) Map(begin, end uint16, io BankIO8) {
	first, last := pageRange(begin, end)
	for p := first; p <= last; p++ {
		t.pages[p] = io
	}

	log.ModHwIo.DebugZ("mapped").
		String("bus", t.Name).
		Hex16("begin", begin).
		Hex16("end", end).
		End()
}

// MapMemorySlice maps a buffer on [begin, end], mirrored if the range is
// larger than the buffer.
func (t *Table) MapMemorySlice(begin, end uint16, buf []uint8, readonly bool) {
	mem := &Mem{Name: t.Name, Data: buf}
	if readonly {
		mem.Flags = MemFlag8ReadOnly
	}
	t.Map(begin, end, mem)
}

func (t *Table) Unmap(begin, end uint16) {
	first, last := pageRange(begin, end)
	clear(t.pages[first : last+1])
}

// Read8 forwards the read to the bank mapped at addr. Unmapped reads return 0.
func (t *Table) Read8(addr uint16, peek bool) uint8 {
	if io := t.pages[addr>>8]; io != nil {
		return io.Read8(addr, peek)
	}
	if !peek {
		log.ModHwIo.DebugZ("unmapped read").String("bus", t.Name).Hex16("addr", addr).End()
	}
	return 0
}

func (t *Table) Peek8(addr uint16) uint8 {
	return t.Read8(addr, true)
}

func (t *Table) Write8(addr uint16, val uint8) {
	if io := t.pages[addr>>8]; io != nil {
		io.Write8(addr, val)
		return
	}
	log.ModHwIo.DebugZ("unmapped write").String("bus", t.Name).Hex16("addr", addr).Hex8("val", val).End()
}
