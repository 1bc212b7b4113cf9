package hw

import (
	"fmt"
	"image"
	"io"

	"nescore/emu/log"
	"nescore/hw/hwio"
	"nescore/hw/mappers"
	"nescore/hw/snapshot"
	"nescore/ines"
)

// Machine is the NES: CPU, PPU, cartridge mapper, controllers and OAM DMA,
// connected through the CPU bus it implements.
//
// A Machine is not safe for concurrent use.
type Machine struct {
	RAM hwio.Mem // 2KB internal RAM

	cpu    *CPU
	ppu    *PPU
	mapper *mappers.Mapper
	input  InputPorts
	dma    oamDMA

	tracer  *tracer
	render  func(*image.RGBA)
	nmiLine bool // last observed PPU NMI output
}

// NewMachine creates a machine with the given cartridge inserted and
// powers it up.
func NewMachine(rom *ines.Rom) (*Machine, error) {
	mapper, err := mappers.New(rom)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		RAM:    hwio.Mem{Name: "RAM", Data: make([]byte, 0x800)},
		mapper: mapper,
	}
	m.cpu = NewCPU(m)
	m.ppu = NewPPU(mapper)
	m.input.initRegs()
	m.dma.initRegs()

	m.Reset()
	return m, nil
}

func (m *Machine) CPU() *CPU                        { return m.cpu }
func (m *Machine) PPU() *PPU                        { return m.ppu }
func (m *Machine) Mapper() *mappers.Mapper          { return m.mapper }
func (m *Machine) Frame() *image.RGBA               { return m.ppu.Output() }
func (m *Machine) Cycles() int64                    { return m.cpu.Cycles }
func (m *Machine) Disasm(pc uint16) DisasmOp        { return m.cpu.Disasm(pc) }
func (m *Machine) Pad(port int) *StandardController { return &m.input.Pads[port] }

// SetButton sets the state of a button on the controller plugged in the
// given port (0 or 1).
func (m *Machine) SetButton(port int, b Button, pressed bool) {
	if port < 0 || port >= len(m.input.Pads) {
		log.ModInput.WarnZ("invalid controller port").Int("port", port).End()
		return
	}
	m.input.Pads[port].SetButton(b, pressed)
}

// SetRenderCallback sets the function called each time the PPU raises its
// NMI output, that is once per frame when NMI is enabled. The callback runs
// synchronously and must not block, the frame buffer it receives is only
// valid during the call.
func (m *Machine) SetRenderCallback(fn func(*image.RGBA)) {
	m.render = fn
}

// SetTraceOutput enables the execution trace, written to w before each
// instruction. A nil writer disables it.
func (m *Machine) SetTraceOutput(w io.Writer) {
	if w == nil {
		m.tracer = nil
		return
	}
	m.tracer = newTracer(w)
}

// Reset resets the CPU, PPU, controllers and DMA, as the reset button
// does. RAM and cartridge content are preserved.
func (m *Machine) Reset() {
	log.ModEmu.InfoZ("reset").End()

	m.ppu.Reset()
	m.ppu.DrawBackdrop()
	m.input.reset()
	m.dma.reset()
	m.nmiLine = false
	m.cpu.Reset()
	m.Tick(int(m.cpu.Cycles))
}

// Step services a pending NMI if any, then executes one CPU instruction and
// advances the PPU accordingly. It returns the number of CPU cycles that
// elapsed, OAM DMA included.
func (m *Machine) Step() (int, error) {
	cycles := 0
	if m.ppu.takeNMI() {
		n := m.cpu.NMI()
		m.Tick(n)
		cycles += n
	}

	if m.tracer != nil {
		if err := m.trace(); err != nil {
			return cycles, fmt.Errorf("trace: %w", err)
		}
	}

	n, err := m.cpu.Step()
	if err != nil {
		return cycles, err
	}
	m.Tick(n)
	cycles += n

	if m.dma.pending {
		stall := m.dma.transfer(m, &m.ppu.OAM, m.ppu.OAMADDR.Value, m.cpu.Cycles)
		m.cpu.Cycles += int64(stall)
		m.Tick(stall)
		cycles += stall
	}
	return cycles, nil
}

func (m *Machine) trace() error {
	c := m.cpu
	return m.tracer.write(c.Disasm(c.PC), cpuState{
		A:        c.A,
		X:        c.X,
		Y:        c.Y,
		P:        c.P,
		SP:       c.SP,
		PC:       c.PC,
		Clock:    c.Cycles,
		Dot:      m.ppu.Dot,
		Scanline: m.ppu.Scanline,
	})
}

// Tick advances the PPU by 3 dots per CPU cycle. The PPU NMI output is
// checked after every dot, the render callback is called on its rising
// edge.
func (m *Machine) Tick(cpuCycles int) {
	for range 3 * cpuCycles {
		m.ppu.Tick()
		m.checkNMI()
	}
}

func (m *Machine) checkNMI() {
	line := m.ppu.NMIPending()
	if line && !m.nmiLine && m.render != nil {
		m.render(m.ppu.Output())
	}
	m.nmiLine = line
}

// RunFrame runs the machine until the PPU completes the current frame.
func (m *Machine) RunFrame() error {
	frame := m.ppu.Frame
	for m.ppu.Frame == frame {
		if _, err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns a copy of the machine registers and internal RAM.
func (m *Machine) Snapshot() snapshot.State {
	c, p := m.cpu, m.ppu
	return snapshot.State{
		Version: snapshot.Version,
		CPU: snapshot.CPU{
			PC:     c.PC,
			SP:     c.SP,
			P:      uint8(c.P),
			A:      c.A,
			X:      c.X,
			Y:      c.Y,
			Cycles: c.Cycles,
			Halted: c.halted,
		},
		PPU: snapshot.PPU{
			PPUCTRL:    p.PPUCTRL.Value,
			PPUMASK:    p.PPUMASK.Value,
			PPUSTATUS:  p.PPUSTATUS.Value,
			OAMAddr:    p.OAMADDR.Value,
			VRAMAddr:   uint16(p.v),
			VRAMTemp:   uint16(p.t),
			FineX:      p.finex,
			WriteLatch: p.writeLatch,
			PPUDataBuf: p.dataBuf,
			Scanline:   p.Scanline,
			Dot:        p.Dot,
			Frame:      p.Frame,
			NMIPending: p.nmiPending,
			Palette:    append([]uint8(nil), p.Palette[:]...),
			OAM:        append([]uint8(nil), p.OAM[:]...),
		},
		RAM: append([]uint8(nil), m.RAM.Data...),
	}
}

// Restore loads the registers and RAM of a snapshot. Nametables and
// cartridge memory are not part of it.
func (m *Machine) Restore(s *snapshot.State) error {
	if len(s.RAM) != len(m.RAM.Data) || len(s.PPU.Palette) != len(m.ppu.Palette) || len(s.PPU.OAM) != len(m.ppu.OAM) {
		return fmt.Errorf("restore: snapshot memory sizes don't match")
	}

	c, p := m.cpu, m.ppu
	c.PC, c.SP, c.P = s.CPU.PC, s.CPU.SP, P(s.CPU.P)
	c.A, c.X, c.Y = s.CPU.A, s.CPU.X, s.CPU.Y
	c.Cycles = s.CPU.Cycles
	c.halted = s.CPU.Halted

	p.PPUCTRL.Value = s.PPU.PPUCTRL
	p.PPUMASK.Value = s.PPU.PPUMASK
	p.PPUSTATUS.Value = s.PPU.PPUSTATUS
	p.OAMADDR.Value = s.PPU.OAMAddr
	p.v, p.t = loopy(s.PPU.VRAMAddr), loopy(s.PPU.VRAMTemp)
	p.finex = s.PPU.FineX
	p.writeLatch = s.PPU.WriteLatch
	p.dataBuf = s.PPU.PPUDataBuf
	p.Scanline, p.Dot, p.Frame = s.PPU.Scanline, s.PPU.Dot, s.PPU.Frame
	p.nmiPending = s.PPU.NMIPending
	copy(p.Palette[:], s.PPU.Palette)
	copy(p.OAM[:], s.PPU.OAM)
	copy(m.RAM.Data, s.RAM)

	m.nmiLine = p.nmiPending
	return nil
}
