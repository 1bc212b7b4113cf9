package hwio

type MemFlags uint8

const (
	MemFlag8ReadOnly MemFlags = 1 << iota // writes are rejected
)

// Mem is a linear memory area that can be mapped into a Table, or used
// directly as a BankIO8.
//
// The memory is mirrored over the whole address range: addresses are reduced
// modulo the buffer length (a mask when the length is a power of 2).
type Mem struct {
	Name  string
	Data  []byte
	Flags MemFlags

	Invalid int // number of rejected writes
}

func (m *Mem) offset(addr uint16) int {
	n := len(m.Data)
	if n&(n-1) == 0 {
		return int(addr) & (n - 1)
	}
	return int(addr) % n
}

func (m *Mem) Read8(addr uint16, _ bool) uint8 {
	if len(m.Data) == 0 {
		return 0
	}
	return m.Data[m.offset(addr)]
}

func (m *Mem) Write8(addr uint16, val uint8) {
	switch {
	case len(m.Data) == 0:
	case m.Flags&MemFlag8ReadOnly != 0:
		m.Invalid++
		reportInvalid("write to read-only memory", m.Name, addr)
	default:
		m.Data[m.offset(addr)] = val
	}
}
