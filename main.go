package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"runtime/debug"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"nescore/emu"
	"nescore/emu/log"
	"nescore/hw"
	"nescore/ines"
)

func main() {
	cfg := parseArgs(os.Args[1:])

	switch cfg.mode {
	case runMode:
		checkf(runROM(cfg.Run), "run failed")
	case traceMode:
		checkf(traceROM(cfg.Trace), "trace failed")
	case romInfosMode:
		rom, err := ines.Open(cfg.RomInfos.RomPath)
		checkf(err, "failed to open rom")
		rom.PrintInfos(os.Stdout)
	case versionMode:
		printVersion()
	}
}

func printVersion() {
	version := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	fmt.Println("nescore", version)
}

func loadConfig(path string) (emu.Config, error) {
	if path == "" {
		var err error
		if path, err = emu.DefaultConfigPath(); err != nil {
			log.ModEmu.WarnZ("no user config directory").Error("err", err).End()
			return emu.DefaultConfig(), nil
		}
	}
	return emu.LoadConfig(path)
}

func runROM(args Run) error {
	rom, err := ines.Open(args.RomPath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(args.Config)
	if err != nil {
		return err
	}
	cfg.Emulation.MaxFrames = args.Frames
	if args.Scale != 0 {
		cfg.Video.ScreenshotScale = args.Scale
	}

	// CPU execution trace setup, the command line has precedence.
	trace := args.Trace
	if trace == nil && cfg.Emulation.Trace != "" {
		trace = &outfile{}
		if err := trace.open(cfg.Emulation.Trace); err != nil {
			return err
		}
	}
	if trace != nil {
		defer trace.Close()
		cfg.TraceOut = trace
	}

	e, err := emu.New(rom, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return e.Run(ctx)
	})

	received := 0
	g.Go(func() error {
		for range e.Frames() {
			received++
		}
		return nil
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		log.ModEmu.InfoZ("interrupted").End()
		err = nil
	}
	if err != nil {
		return err
	}

	log.ModEmu.InfoZ("run finished").
		Int64("frames", e.FrameCount()).
		Int("received", received).
		Int64("dropped", e.Dropped()).
		End()

	m := e.Machine()
	if args.Screenshot != "" {
		if err := saveScreenshot(m.Frame(), args.Screenshot, cfg.Video.ScreenshotScale); err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
	}
	if args.DumpState != "" {
		if err := dumpState(m, args.DumpState); err != nil {
			return fmt.Errorf("dump state: %w", err)
		}
	}
	return nil
}

// traceROM runs count instructions, writing the CPU trace to out. When a
// start address is given, the CPU jumps there after reset, as in nestest
// automated mode.
func traceROM(args Trace) error {
	rom, err := ines.Open(args.RomPath)
	if err != nil {
		return err
	}
	m, err := hw.NewMachine(rom)
	if err != nil {
		return err
	}
	if args.PC.set {
		m.CPU().PC = args.PC.addr
	}

	out := args.Out
	if out == nil {
		out = &outfile{}
		if err := out.open("stdout"); err != nil {
			return err
		}
	}
	defer out.Close()

	m.SetTraceOutput(out)
	for i := range args.Count {
		if _, err := m.Step(); err != nil {
			if errors.Is(err, hw.ErrCPUJam) {
				log.ModCPU.InfoZ("cpu jammed").Int("instructions", i).End()
				return nil
			}
			return err
		}
	}
	return nil
}

func saveScreenshot(img *image.RGBA, path string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func dumpState(m *hw.Machine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	state := m.Snapshot()
	if err := state.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
