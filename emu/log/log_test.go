package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestModuleByName(t *testing.T) {
	for _, name := range ModuleNames() {
		mod, ok := ModuleByName(name)
		if !ok {
			t.Fatalf("module %q not found", name)
		}
		if mod.String() != name {
			t.Errorf("got module name %q, want %q", mod.String(), name)
		}
	}

	if _, ok := ModuleByName("<error>"); ok {
		t.Errorf("placeholder module name should not resolve")
	}
}

func TestDebugZDisabled(t *testing.T) {
	DisableDebugModules(ModuleMaskAll)
	if e := ModPPU.DebugZ("nope"); e != nil {
		t.Fatalf("DebugZ on disabled module should return nil")
	}

	// Calling methods on a nil entry is valid.
	ModPPU.DebugZ("nope").Hex8("val", 1).Hex16("addr", 2).End()
}

func TestWarnZOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	ModHwIo.WarnZ("invalid read").Hex16("addr", 0x2000).String("name", "PPUCTRL").End()

	out := buf.String()
	for _, want := range []string{"invalid read", "addr=2000", "name=PPUCTRL", "_mod=hwio"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q doesn't contain %q", out, want)
		}
	}

	buf.Reset()
	Disable()
	ModHwIo.WarnZ("silenced").End()
	Enable()
	if buf.Len() != 0 {
		t.Errorf("got output while disabled: %q", buf.String())
	}
}

func TestEnableDebugModules(t *testing.T) {
	t.Cleanup(func() { DisableDebugModules(ModuleMaskAll) })

	EnableDebugModules(ModCPU.Mask())
	if !ModCPU.Enabled(DebugLevel) {
		t.Errorf("cpu debug should be enabled")
	}
	if ModPPU.Enabled(DebugLevel) {
		t.Errorf("ppu debug should be disabled")
	}
	if !ModPPU.Enabled(ErrorLevel) {
		t.Errorf("ppu errors should always be enabled")
	}
}

func TestFieldValue(t *testing.T) {
	var nilErr error
	tests := []struct {
		name string
		z    *EntryZ
		want string
	}{
		{"hex8", newEntryZ(ModEmu, InfoLevel, "").Hex8("k", 0x0A), "0a"},
		{"hex16", newEntryZ(ModEmu, InfoLevel, "").Hex16("k", 0xC5), "00c5"},
		{"int64", newEntryZ(ModEmu, InfoLevel, "").Int64("k", -3), "-3"},
		{"uint16", newEntryZ(ModEmu, InfoLevel, "").Uint16("k", 65535), "65535"},
		{"bool", newEntryZ(ModEmu, InfoLevel, "").Bool("k", true), "true"},
		{"blob", newEntryZ(ModEmu, InfoLevel, "").Blob("k", []byte{0xDE, 0xAD}), "dead"},
		{"nil error", newEntryZ(ModEmu, InfoLevel, "").Error("k", nilErr), "<nil>"},
		{"stringer", newEntryZ(ModEmu, InfoLevel, "").Stringer("k", ModPPU), "ppu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.z.fields[0].Value(); got != tt.want {
				t.Errorf("Value() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaxFields(t *testing.T) {
	z := newEntryZ(ModEmu, InfoLevel, "")
	for i := range maxZFields + 3 {
		z.Int("k", i)
	}
	if z.n != maxZFields {
		t.Errorf("got %d fields, want %d", z.n, maxZFields)
	}
}
