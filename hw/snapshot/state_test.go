package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecode(t *testing.T) {
	want := &State{
		Version: Version,
		CPU: CPU{
			PC: 0xC000, SP: 0xFD, P: 0x24,
			A: 1, X: 2, Y: 3,
			Cycles: 123456789,
		},
		PPU: PPU{
			PPUCTRL:    0x80,
			PPUSTATUS:  0xC0,
			VRAMAddr:   0x2345,
			VRAMTemp:   0x7FFF,
			FineX:      5,
			WriteLatch: true,
			Scanline:   261,
			Dot:        340,
			Frame:      42,
			Palette:    bytes.Repeat([]byte{0x0F}, 32),
			OAM:        bytes.Repeat([]byte{0xFF, 0x01}, 128),
		},
		RAM: bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 0x200),
	}

	var buf bytes.Buffer
	if err := want.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if testing.Verbose() {
		t.Logf("encoded: %s", buf.String())
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded state mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bad version", `{"version":99,"cpu":{},"ppu":{}}`, "unsupported version"},
		{"missing version", `{"cpu":{"pc":1}}`, "unsupported version"},
		{"not an object", `[1,2,3]`, "snapshot"},
		{"bad field type", `{"version":1,"cpu":{"pc":"C000"}}`, "snapshot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			if err == nil {
				t.Fatalf("Decode(%s) should fail", tt.in)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Decode(%s) error = %q, want it to contain %q", tt.in, err, tt.want)
			}
		})
	}
}

func TestDecodeUnknownFields(t *testing.T) {
	in := `{"version":1,"extra":{"a":[1,2]},"cpu":{"pc":49152,"future":true}}`
	got, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got.CPU.PC != 0xC000 {
		t.Errorf("PC = %04X, want C000", got.CPU.PC)
	}
}
