package log

import "sync/atomic"

// Module is a source of log messages. Warnings and errors of all modules are
// emitted, debug and info messages only for modules enabled with
// EnableDebugModules.
type Module uint

// ModuleMask is a set of modules.
type ModuleMask uint64

const ModuleMaskAll = ^ModuleMask(0)

// Standard modules. Packages needing their own module create it with
// NewModule at init time.
const (
	ModEmu Module = iota + 1
	ModCPU
	ModMem
	ModHwIo
	ModPPU
	ModInput
	ModDMA
)

var (
	// index 0 is the invalid module.
	modNames = []string{"<error>", "emu", "cpu", "mem", "hwio", "ppu", "input", "dma"}

	debugMask atomic.Uint64
)

// NewModule registers a new log module. It must be called during package
// initialization.
func NewModule(name string) Module {
	if len(modNames) == 64 {
		panic("log: too many modules")
	}
	modNames = append(modNames, name)
	return Module(len(modNames) - 1)
}

func ModuleByName(name string) (Module, bool) {
	for i := 1; i < len(modNames); i++ {
		if modNames[i] == name {
			return Module(i), true
		}
	}
	return 0, false
}

// ModuleNames returns the names of all registered modules.
func ModuleNames() []string {
	return append([]string(nil), modNames[1:]...)
}

func (mod Module) String() string {
	if int(mod) >= len(modNames) {
		return modNames[0]
	}
	return modNames[mod]
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func EnableDebugModules(mask ModuleMask) {
	debugMask.Or(uint64(mask))
}

func DisableDebugModules(mask ModuleMask) {
	debugMask.And(^uint64(mask))
}

// Enabled reports whether a message at the given level would be emitted by
// mod.
func (mod Module) Enabled(level Level) bool {
	if disabled.Load() {
		return false
	}
	return level <= WarnLevel || ModuleMask(debugMask.Load())&mod.Mask() != 0
}

func (mod Module) Debugf(format string, args ...any) { Entry{mod: mod}.Debugf(format, args...) }
func (mod Module) Infof(format string, args ...any)  { Entry{mod: mod}.Infof(format, args...) }
func (mod Module) Warnf(format string, args ...any)  { Entry{mod: mod}.Warnf(format, args...) }
func (mod Module) Errorf(format string, args ...any) { Entry{mod: mod}.Errorf(format, args...) }
func (mod Module) Fatalf(format string, args ...any) { Entry{mod: mod}.Fatalf(format, args...) }

func (mod Module) WithField(key string, value any) Entry {
	return Entry{mod: mod}.WithField(key, value)
}

// Structured entries, nil when the level is disabled for mod.

func (mod Module) logz(lvl Level, msg string) *EntryZ {
	if !mod.Enabled(lvl) {
		return nil
	}
	return newEntryZ(mod, lvl, msg)
}

func (mod Module) DebugZ(msg string) *EntryZ { return mod.logz(DebugLevel, msg) }
func (mod Module) InfoZ(msg string) *EntryZ  { return mod.logz(InfoLevel, msg) }
func (mod Module) WarnZ(msg string) *EntryZ  { return mod.logz(WarnLevel, msg) }
func (mod Module) ErrorZ(msg string) *EntryZ { return mod.logz(ErrorLevel, msg) }
func (mod Module) FatalZ(msg string) *EntryZ { return mod.logz(FatalLevel, msg) }
func (mod Module) PanicZ(msg string) *EntryZ { return mod.logz(PanicLevel, msg) }
