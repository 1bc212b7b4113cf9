package emu

import (
	"context"
	"errors"
	"fmt"
	"image"
	"slices"
	"sync/atomic"

	"nescore/emu/log"
	"nescore/hw"
	"nescore/ines"
)

//go:generate go tool stringer -type=Command -trimprefix=Cmd -output=command_string.go

// Command controls the emulation loop from another goroutine.
type Command uint8

const (
	CmdPause Command = iota
	CmdResume
	CmdReset
	CmdStop
)

var (
	// ErrCommandQueueFull is returned by Send when the loop hasn't consumed
	// the previous commands yet.
	ErrCommandQueueFull = errors.New("command queue full")

	// ErrClosed is returned by Send, and Run, once the emulation loop has
	// exited.
	ErrClosed = errors.New("emulator closed")
)

// Emulator runs a Machine on its own goroutine. Frames are published on a
// bounded channel, commands and controller state are received from other
// goroutines.
type Emulator struct {
	m   *hw.Machine
	cfg Config

	frames chan *image.RGBA
	cmds   chan Command

	// These are accessed concurrently by the emulator loop and its clients.
	quit    atomic.Bool
	paused  atomic.Bool
	closed  atomic.Bool
	running atomic.Bool
	buttons [2]atomic.Uint32 // bit n set when hw.Button n is pressed

	nframes atomic.Int64
	dropped atomic.Int64
}

// New powers up a machine with rom inserted. It doesn't start the emulation
// loop, call Run for that.
func New(rom *ines.Rom, cfg Config) (*Emulator, error) {
	cfg.Check()

	m, err := hw.NewMachine(rom)
	if err != nil {
		return nil, fmt.Errorf("power up failed: %w", err)
	}

	e := &Emulator{
		m:      m,
		cfg:    cfg,
		frames: make(chan *image.RGBA, cfg.Emulation.FrameQueue),
		cmds:   make(chan Command, cfg.Emulation.CommandQueue),
	}
	m.SetRenderCallback(e.publish)

	// CPU execution trace setup.
	if cfg.TraceOut != nil {
		m.SetTraceOutput(cfg.TraceOut)
	}
	return e, nil
}

// Machine gives access to the emulated machine. It must not be used while
// Run is executing.
func (e *Emulator) Machine() *hw.Machine { return e.m }

// Frames returns the channel on which rendered frames are published. It is
// closed when Run returns.
func (e *Emulator) Frames() <-chan *image.RGBA { return e.frames }

func (e *Emulator) FrameCount() int64 { return e.nframes.Load() }
func (e *Emulator) Dropped() int64    { return e.dropped.Load() }
func (e *Emulator) Paused() bool      { return e.paused.Load() }

// Send queues a command for the emulation loop. It never blocks.
func (e *Emulator) Send(cmd Command) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if cmd == CmdStop {
		// Let the loop see it at the next instruction, not the next frame.
		e.quit.Store(true)
	}
	select {
	case e.cmds <- cmd:
		return nil
	default:
		return ErrCommandQueueFull
	}
}

// SetButton sets the state of a button of the controller plugged in port
// (0 or 1). The state is applied to the machine before the next frame.
func (e *Emulator) SetButton(port int, b hw.Button, pressed bool) {
	if port < 0 || port >= len(e.buttons) {
		log.ModInput.WarnZ("invalid controller port").Int("port", port).End()
		return
	}
	if pressed {
		e.buttons[port].Or(1 << b)
	} else {
		e.buttons[port].And(^uint32(1 << b))
	}
}

// Run runs the emulation loop until a CmdStop is received, ctx is
// cancelled, the configured number of frames is reached, or the CPU fails.
// Stop requests are honored between instructions.
func (e *Emulator) Run(ctx context.Context) error {
	if e.closed.Load() || !e.running.CompareAndSwap(false, true) {
		return ErrClosed
	}
	defer e.close()

	log.ModEmu.InfoZ("emulation loop started").End()
	defer func() {
		log.ModEmu.InfoZ("emulation loop exited").Int64("frames", e.nframes.Load()).End()
	}()

	for {
		if e.quit.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		e.drainCommands()
		if e.paused.Load() && !e.quit.Load() {
			// Don't burn cpu while paused.
			select {
			case cmd := <-e.cmds:
				e.handle(cmd)
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		e.applyButtons()
		if err := e.runFrame(); err != nil {
			return err
		}

		n := e.nframes.Add(1)
		if limit := e.cfg.Emulation.MaxFrames; limit > 0 && n >= limit {
			return nil
		}
	}
}

// runFrame runs the machine until the PPU completes the current frame, or
// a stop has been requested.
func (e *Emulator) runFrame() error {
	ppu := e.m.PPU()
	frame := ppu.Frame
	for ppu.Frame == frame {
		if e.quit.Load() {
			return nil
		}
		if _, err := e.m.Step(); err != nil {
			return fmt.Errorf("frame %d: %w", e.nframes.Load(), err)
		}
	}
	return nil
}

func (e *Emulator) drainCommands() {
	for {
		select {
		case cmd := <-e.cmds:
			e.handle(cmd)
		default:
			return
		}
	}
}

func (e *Emulator) handle(cmd Command) {
	log.ModEmu.DebugZ("command").Stringer("cmd", cmd).End()

	switch cmd {
	case CmdPause:
		e.paused.Store(true)
	case CmdResume:
		e.paused.Store(false)
	case CmdReset:
		e.m.Reset()
	case CmdStop:
		e.quit.Store(true)
	}
}

func (e *Emulator) applyButtons() {
	for port := range e.buttons {
		var mask uint32
		if e.cfg.Input.plugged(port) {
			mask = e.buttons[port].Load()
		}
		for b := range hw.NumButtons {
			e.m.SetButton(port, b, mask&(1<<b) != 0)
		}
	}
}

// publish is the machine render callback. The frame buffer is only valid
// during the call so a copy is sent.
func (e *Emulator) publish(img *image.RGBA) {
	frame := &image.RGBA{
		Pix:    slices.Clone(img.Pix),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	select {
	case e.frames <- frame:
	default:
		n := e.dropped.Add(1)
		log.ModEmu.DebugZ("frame dropped").Int64("dropped", n).End()
	}
}

func (e *Emulator) close() {
	e.closed.Store(true)
	e.m.SetRenderCallback(nil)
	close(e.frames)
}
