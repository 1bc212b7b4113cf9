package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"nescore/emu/log"
)

type mode byte

const (
	runMode      mode = iota // Run a ROM headlessly
	traceMode                // Write a CPU trace
	romInfosMode             // Show ROM infos
	versionMode              // Show nescore version
)

type (
	CLI struct {
		Run      Run      `cmd:"" help:"Run ROM headlessly."`
		Trace    Trace    `cmd:"" help:"Write nestest-style CPU trace of a ROM."`
		RomInfos RomInfos `cmd:"" help:"Show ROM infos." name:"rom-infos"`
		Version  Version  `cmd:"" help:"Show nescore version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Run struct {
		RomPath string `arg:"" name:"/path/to/rom" help:"ROM to run." type:"existingfile"`

		Frames     int64    `name:"frames" help:"Number of frames to run (0 runs until interrupted)." default:"60"`
		Trace      *outfile `name:"trace" help:"Write CPU trace log." placeholder:"FILE|stdout|stderr"`
		Screenshot string   `name:"screenshot" help:"Save last frame as PNG." type:"path"`
		Scale      int      `name:"scale" help:"${scale_help}"`
		DumpState  string   `name:"dump-state" help:"Write machine state as JSON when done." type:"path"`
		Config     string   `name:"config" help:"${config_help}" type:"path"`
	}

	Trace struct {
		RomPath string `arg:"" name:"/path/to/rom" help:"ROM to trace." type:"existingfile"`

		PC    hexaddr  `name:"pc" help:"Start execution at this address instead of the reset vector." placeholder:"ADDR"`
		Count int      `name:"count" help:"Number of instructions to trace." default:"8991"`
		Out   *outfile `name:"out" help:"Trace output (default stdout)." placeholder:"FILE|stdout|stderr"`
	}

	RomInfos struct {
		RomPath string `arg:"" name:"/path/to/rom" type:"existingfile"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"log_help":    "Enable logging for specified modules.",
	"scale_help":  "Screenshot scale factor (overrides config).",
	"config_help": "Configuration file (default in user config directory).",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("nescore"),
		kong.Description("Headless NES emulator core."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")

	switch ctx.Command() {
	case "trace </path/to/rom>":
		cfg.mode = traceMode
	case "rom-infos </path/to/rom>":
		cfg.mode = romInfosMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

// printHelp adds the list of log modules to the help of commands accepting
// --log.
func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("\nLog modules:\n")
	sb.WriteString("  --log accepts a comma-separated list among:\n")
	for _, name := range log.ModuleNames() {
		fmt.Fprintf(&sb, "    %s\n", name)
	}
	sb.WriteString("  'all' enables all modules, 'no' disables logging entirely.\n")

	_, err := io.WriteString(os.Stderr, sb.String())
	return err
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask
// and enables debug logs for them.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	var tok string
	if err := ctx.Scan.PopValueInto("log", &tok); err != nil {
		return err
	}

	mask, nolog, err := parseLogModules(tok)
	if err != nil {
		return err
	}
	if nolog {
		log.Disable()
		return nil
	}
	log.EnableDebugModules(mask)
	return nil
}

func parseLogModules(s string) (mask log.ModuleMask, nolog bool, err error) {
	all := false
	for _, v := range strings.Split(s, ",") {
		switch v {
		case "all":
			all = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return 0, false, fmt.Errorf("unknown log module %s", v)
			}
			mask |= mod.Mask()
		}
	}

	switch {
	case nolog && all:
		return 0, false, fmt.Errorf("cannot use 'all' and 'no' together")
	case nolog && mask != 0:
		return 0, false, fmt.Errorf("cannot combine 'no' with other log modules")
	case all:
		mask = log.ModuleMaskAll
	}
	return mask, nolog, nil
}

// hexaddr is a CPU address given in hexadecimal, with an optional $ or 0x
// prefix.
type hexaddr struct {
	addr uint16
	set  bool
}

// Implements kong.MapperValue interface.
func (h *hexaddr) Decode(ctx *kong.DecodeContext) error {
	var tok string
	if err := ctx.Scan.PopValueInto("address", &tok); err != nil {
		return err
	}
	addr, err := parseHexAddr(tok)
	if err != nil {
		return err
	}
	h.addr, h.set = addr, true
	return nil
}

func parseHexAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}
	return uint16(v), nil
}

// outfile is a trace destination: a file, or one of the standard streams.
type outfile struct {
	io.Writer
	name string
}

// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	var name string
	if err := ctx.Scan.PopValueInto("file", &name); err != nil {
		return err
	}
	return f.open(name)
}

func (f *outfile) open(name string) error {
	f.name = name
	switch name {
	case "stdout":
		f.Writer = os.Stdout
	case "stderr":
		f.Writer = os.Stderr
	default:
		fd, err := os.Create(name)
		if err != nil {
			return err
		}
		f.Writer = fd
	}
	return nil
}

func (f *outfile) String() string { return f.name }

// Close closes the underlying file, standard streams are left open.
func (f *outfile) Close() error {
	if fd, ok := f.Writer.(*os.File); ok && fd != os.Stdout && fd != os.Stderr {
		return fd.Close()
	}
	return nil
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf("%s.\n%s", fmt.Sprintf(format, args...), err)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
