package emu

import (
	"context"
	"errors"
	"testing"
	"time"

	"nescore/hw"
	"nescore/ines"
)

// loopRom returns a NROM cartridge which enables NMI and then loops
// forever. The NMI handler increments $00.
func loopRom(prg ...byte) *ines.Rom {
	rom := &ines.Rom{
		PRGROM: make([]byte, 0x8000),
		CHRROM: make([]byte, 0x2000),
	}
	rom.Mirroring = ines.VertMirroring
	rom.PRGROMSize = len(rom.PRGROM)
	rom.CHRROMSize = len(rom.CHRROM)

	if len(prg) == 0 {
		prg = []byte{
			0xA9, 0x80, // LDA #$80
			0x8D, 0x00, 0x20, // STA $2000
			0x4C, 0x05, 0x80, // JMP $8005
		}
	}
	copy(rom.PRGROM, prg)
	copy(rom.PRGROM[0x1000:], []byte{0xE6, 0x00, 0x40})
	copy(rom.PRGROM[0x7FFA:], []byte{0x00, 0x90, 0x00, 0x80, 0x00, 0x80})
	return rom
}

func newTestEmulator(t *testing.T, cfg Config, prg ...byte) *Emulator {
	t.Helper()

	e, err := New(loopRom(prg...), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// runAsync runs e in a goroutine and returns the channel on which Run
// result is sent.
func runAsync(ctx context.Context, e *Emulator) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- e.Run(ctx) }()
	return errc
}

func waitRun(t *testing.T, errc <-chan error) error {
	t.Helper()

	select {
	case err := <-errc:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("emulation loop didn't exit")
	}
	return nil
}

func TestRunMaxFrames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Emulation.FrameQueue = 16
	cfg.Emulation.MaxFrames = 5
	e := newTestEmulator(t, cfg)

	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := e.FrameCount(); got != 5 {
		t.Errorf("FrameCount() = %d, want 5", got)
	}
	nframes := 0
	for img := range e.Frames() {
		if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 240 {
			t.Errorf("frame size = %v, want 256x240", img.Bounds())
		}
		nframes++
	}
	if nframes != 5 {
		t.Errorf("received %d frames, want 5", nframes)
	}
	if got := e.Machine().RAM.Data[0]; got != 5 {
		t.Errorf("NMI handler ran %d times, want 5", got)
	}
	if e.Dropped() != 0 {
		t.Errorf("Dropped() = %d, want 0", e.Dropped())
	}
}

func TestMachineAfterRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Emulation.MaxFrames = 1
	e := newTestEmulator(t, cfg)

	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Frames rendered once Run has returned are not published.
	m := e.Machine()
	for range 3 {
		if err := m.RunFrame(); err != nil {
			t.Fatal(err)
		}
	}
	if got := m.RAM.Data[0]; got != 4 {
		t.Errorf("NMI handler ran %d times, want 4", got)
	}
	nframes := 0
	for range e.Frames() {
		nframes++
	}
	if nframes != 1 {
		t.Errorf("received %d frames, want 1", nframes)
	}
}

func TestFramesAreCopies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Emulation.FrameQueue = 4
	cfg.Emulation.MaxFrames = 2
	e := newTestEmulator(t, cfg)

	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	f1, f2 := <-e.Frames(), <-e.Frames()
	if &f1.Pix[0] == &f2.Pix[0] || &f1.Pix[0] == &e.Machine().Frame().Pix[0] {
		t.Errorf("frames share their pixel buffer")
	}
}

func TestFrameDropped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Emulation.FrameQueue = 1
	cfg.Emulation.MaxFrames = 4
	e := newTestEmulator(t, cfg)

	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := e.Dropped(); got != 3 {
		t.Errorf("Dropped() = %d, want 3", got)
	}
	if got := len(e.Frames()); got != 1 {
		t.Errorf("%d frames queued, want 1", got)
	}
}

func TestStopBeforeRun(t *testing.T) {
	e := newTestEmulator(t, DefaultConfig())

	if err := e.Send(CmdStop); err != nil {
		t.Fatal(err)
	}
	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	// No instruction has been executed since reset.
	if got := e.Machine().Cycles(); got != 7 {
		t.Errorf("Cycles() = %d, want 7", got)
	}
	if got := e.FrameCount(); got != 0 {
		t.Errorf("FrameCount() = %d, want 0", got)
	}
}

func TestSendStop(t *testing.T) {
	e := newTestEmulator(t, DefaultConfig())

	errc := runAsync(context.Background(), e)
	// Let it run a few frames.
	for range 3 {
		<-e.Frames()
	}
	if err := e.Send(CmdStop); err != nil {
		t.Fatal(err)
	}
	if err := waitRun(t, errc); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}

	if err := e.Send(CmdPause); !errors.Is(err, ErrClosed) {
		t.Errorf("Send after stop = %v, want %v", err, ErrClosed)
	}
	if err := e.Run(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Run after stop = %v, want %v", err, ErrClosed)
	}
}

func TestSendQueueFull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Emulation.CommandQueue = 2
	e := newTestEmulator(t, cfg)

	for range 2 {
		if err := e.Send(CmdPause); err != nil {
			t.Fatal(err)
		}
	}
	if err := e.Send(CmdResume); !errors.Is(err, ErrCommandQueueFull) {
		t.Errorf("Send = %v, want %v", err, ErrCommandQueueFull)
	}
}

func TestPauseResume(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Emulation.MaxFrames = 2
	e := newTestEmulator(t, cfg)

	if err := e.Send(CmdPause); err != nil {
		t.Fatal(err)
	}
	errc := runAsync(context.Background(), e)

	deadline := time.Now().Add(5 * time.Second)
	for !e.Paused() {
		if time.Now().After(deadline) {
			t.Fatal("emulator not paused")
		}
		time.Sleep(time.Millisecond)
	}
	if got := e.FrameCount(); got != 0 {
		t.Errorf("FrameCount() = %d while paused, want 0", got)
	}

	if err := e.Send(CmdResume); err != nil {
		t.Fatal(err)
	}
	if err := waitRun(t, errc); err != nil {
		t.Fatal(err)
	}
	if got := e.FrameCount(); got != 2 {
		t.Errorf("FrameCount() = %d, want 2", got)
	}
}

func TestRunContextCancel(t *testing.T) {
	e := newTestEmulator(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	errc := runAsync(ctx, e)
	<-e.Frames()
	cancel()

	if err := waitRun(t, errc); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want %v", err, context.Canceled)
	}
}

func TestRunCPUJam(t *testing.T) {
	e := newTestEmulator(t, DefaultConfig(), 0xEA, 0x02)

	err := e.Run(context.Background())
	if !errors.Is(err, hw.ErrCPUJam) {
		t.Fatalf("Run() = %v, want %v", err, hw.ErrCPUJam)
	}
	if !e.Machine().CPU().IsHalted() {
		t.Errorf("CPU should be halted")
	}
}

func TestResetCommand(t *testing.T) {
	e := newTestEmulator(t, DefaultConfig())

	m := e.Machine()
	for range 10 {
		if _, err := m.Step(); err != nil {
			t.Fatal(err)
		}
	}
	e.handle(CmdReset)

	if got := m.CPU().PC; got != 0x8000 {
		t.Errorf("PC = %04X after reset, want 8000", got)
	}
}

func TestSetButton(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = InputConfig{Port1: true, Port2: false}
	e := newTestEmulator(t, cfg)

	e.SetButton(0, hw.ButtonA, true)
	e.SetButton(0, hw.ButtonStart, true)
	e.SetButton(0, hw.ButtonStart, false)
	e.SetButton(1, hw.ButtonB, true)
	e.SetButton(2, hw.ButtonB, true)
	e.applyButtons()

	m := e.Machine()
	tests := []struct {
		port int
		b    hw.Button
		want bool
	}{
		{0, hw.ButtonA, true},
		{0, hw.ButtonStart, false},
		{0, hw.ButtonB, false},
		{1, hw.ButtonB, false}, // unplugged
	}
	for _, tt := range tests {
		if got := m.Pad(tt.port).Pressed(tt.b); got != tt.want {
			t.Errorf("port %d: Pressed(%s) = %t, want %t", tt.port, tt.b, got, tt.want)
		}
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{CmdPause, "Pause"},
		{CmdResume, "Resume"},
		{CmdReset, "Reset"},
		{CmdStop, "Stop"},
		{Command(42), "Command(42)"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
