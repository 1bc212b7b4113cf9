package snapshot

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"
)

// Version is the snapshot format version.
const Version = 1

// State is a plain copy of the machine registers, suitable for debugging
// dumps.
type State struct {
	Version int
	CPU     CPU
	PPU     PPU
	RAM     []uint8
}

type CPU struct {
	PC     uint16
	SP     uint8
	P      uint8
	A      uint8
	X      uint8
	Y      uint8
	Cycles int64
	Halted bool
}

type PPU struct {
	PPUCTRL   uint8
	PPUMASK   uint8
	PPUSTATUS uint8
	OAMAddr   uint8

	VRAMAddr   uint16
	VRAMTemp   uint16
	FineX      uint8
	WriteLatch bool
	PPUDataBuf uint8

	Scanline   int
	Dot        int
	Frame      int64
	NMIPending bool

	Palette []uint8
	OAM     []uint8
}

// Encode writes the state as JSON.
func (s *State) Encode(w io.Writer) error {
	var e jx.Encoder
	s.encode(&e)
	_, err := w.Write(append(e.Bytes(), '\n'))
	return err
}

func (s *State) encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("version", func(e *jx.Encoder) { e.Int(s.Version) })
		e.Field("cpu", func(e *jx.Encoder) { s.CPU.encode(e) })
		e.Field("ppu", func(e *jx.Encoder) { s.PPU.encode(e) })
		e.Field("ram", func(e *jx.Encoder) { e.Base64(s.RAM) })
	})
}

func (c *CPU) encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("pc", func(e *jx.Encoder) { e.UInt16(c.PC) })
		e.Field("sp", func(e *jx.Encoder) { e.UInt8(c.SP) })
		e.Field("p", func(e *jx.Encoder) { e.UInt8(c.P) })
		e.Field("a", func(e *jx.Encoder) { e.UInt8(c.A) })
		e.Field("x", func(e *jx.Encoder) { e.UInt8(c.X) })
		e.Field("y", func(e *jx.Encoder) { e.UInt8(c.Y) })
		e.Field("cycles", func(e *jx.Encoder) { e.Int64(c.Cycles) })
		e.Field("halted", func(e *jx.Encoder) { e.Bool(c.Halted) })
	})
}

func (p *PPU) encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("ppuctrl", func(e *jx.Encoder) { e.UInt8(p.PPUCTRL) })
		e.Field("ppumask", func(e *jx.Encoder) { e.UInt8(p.PPUMASK) })
		e.Field("ppustatus", func(e *jx.Encoder) { e.UInt8(p.PPUSTATUS) })
		e.Field("oamaddr", func(e *jx.Encoder) { e.UInt8(p.OAMAddr) })
		e.Field("v", func(e *jx.Encoder) { e.UInt16(p.VRAMAddr) })
		e.Field("t", func(e *jx.Encoder) { e.UInt16(p.VRAMTemp) })
		e.Field("finex", func(e *jx.Encoder) { e.UInt8(p.FineX) })
		e.Field("latch", func(e *jx.Encoder) { e.Bool(p.WriteLatch) })
		e.Field("databuf", func(e *jx.Encoder) { e.UInt8(p.PPUDataBuf) })
		e.Field("scanline", func(e *jx.Encoder) { e.Int(p.Scanline) })
		e.Field("dot", func(e *jx.Encoder) { e.Int(p.Dot) })
		e.Field("frame", func(e *jx.Encoder) { e.Int64(p.Frame) })
		e.Field("nmi", func(e *jx.Encoder) { e.Bool(p.NMIPending) })
		e.Field("palette", func(e *jx.Encoder) { e.Base64(p.Palette) })
		e.Field("oam", func(e *jx.Encoder) { e.Base64(p.OAM) })
	})
}

// Decode reads a JSON encoded state.
func Decode(r io.Reader) (*State, error) {
	s := &State{}
	d := jx.Decode(r, 4096)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "version":
			s.Version, err = d.Int()
		case "cpu":
			err = s.CPU.decode(d)
		case "ppu":
			err = s.PPU.decode(d)
		case "ram":
			s.RAM, err = d.Base64()
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("snapshot: unsupported version %d", s.Version)
	}
	return s, nil
}

func (c *CPU) decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "pc":
			c.PC, err = d.UInt16()
		case "sp":
			c.SP, err = d.UInt8()
		case "p":
			c.P, err = d.UInt8()
		case "a":
			c.A, err = d.UInt8()
		case "x":
			c.X, err = d.UInt8()
		case "y":
			c.Y, err = d.UInt8()
		case "cycles":
			c.Cycles, err = d.Int64()
		case "halted":
			c.Halted, err = d.Bool()
		default:
			err = d.Skip()
		}
		return err
	})
}

func (p *PPU) decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "ppuctrl":
			p.PPUCTRL, err = d.UInt8()
		case "ppumask":
			p.PPUMASK, err = d.UInt8()
		case "ppustatus":
			p.PPUSTATUS, err = d.UInt8()
		case "oamaddr":
			p.OAMAddr, err = d.UInt8()
		case "v":
			p.VRAMAddr, err = d.UInt16()
		case "t":
			p.VRAMTemp, err = d.UInt16()
		case "finex":
			p.FineX, err = d.UInt8()
		case "latch":
			p.WriteLatch, err = d.Bool()
		case "databuf":
			p.PPUDataBuf, err = d.UInt8()
		case "scanline":
			p.Scanline, err = d.Int()
		case "dot":
			p.Dot, err = d.Int()
		case "frame":
			p.Frame, err = d.Int64()
		case "nmi":
			p.NMIPending, err = d.Bool()
		case "palette":
			p.Palette, err = d.Base64()
		case "oam":
			p.OAM, err = d.Base64()
		default:
			err = d.Skip()
		}
		return err
	})
}
