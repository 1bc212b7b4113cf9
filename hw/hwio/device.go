package hwio

import "nescore/emu/log"

// RWFlags restricts the accesses allowed on a register or device.
type RWFlags uint8

const (
	ReadOnlyFlag RWFlags = 1 << iota
	WriteOnlyFlag
)

// reportInvalid logs an access forbidden by flags.
func reportInvalid(what, name string, addr uint16) {
	log.ModHwIo.WarnZ("invalid "+what).
		String("name", name).
		Hex16("addr", addr).
		End()
}

// Device is a BankIO8 whose accesses are entirely handled by callbacks.
// Missing callbacks read as 0 and ignore writes.
type Device struct {
	Name  string
	Flags RWFlags

	ReadCb  func(addr uint16) uint8
	PeekCb  func(addr uint16) uint8
	WriteCb func(addr uint16, val uint8)

	Invalid int // number of invalid accesses
}

func (d *Device) Read8(addr uint16, peek bool) uint8 {
	cb := d.ReadCb
	switch {
	case peek:
		cb = d.PeekCb
	case d.Flags&WriteOnlyFlag != 0:
		d.Invalid++
		reportInvalid("read from write-only device", d.Name, addr)
		return 0
	}
	if cb == nil {
		return 0
	}
	return cb(addr)
}

func (d *Device) Write8(addr uint16, val uint8) {
	if d.Flags&ReadOnlyFlag != 0 {
		d.Invalid++
		reportInvalid("write to read-only device", d.Name, addr)
		return
	}
	if d.WriteCb != nil {
		d.WriteCb(addr, val)
	}
}
