package hw

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDisasmOpString(t *testing.T) {
	tests := []struct {
		op   DisasmOp
		want string
	}{
		{
			op: DisasmOp{PC: 0xC000, Buf: []byte{0x4C, 0xF5, 0xC5}, Opcode: "JMP", Oper: "$C5F5"},
			//      0         1         2         3         4
			//      0123456789012345678901234567890123456789012345678
			want: `C000  4C F5 C5  JMP $C5F5                       `,
		},
		{
			op:   DisasmOp{PC: 0xC6BD, Buf: []byte{0x04, 0xA9}, Opcode: "NOP", Illegal: true, Oper: "$A9 = 00"},
			want: `C6BD  04 A9    *NOP $A9 = 00                    `,
		},
		{
			op:   DisasmOp{PC: 0xC72A, Buf: []byte{0x08}, Opcode: "PHP"},
			want: `C72A  08        PHP                             `,
		},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("\ngot:  %q\nwant: %q", got, tt.want)
		}
	}
}

func TestDisasm(t *testing.T) {
	dump := `
0010: 34 12
0020: 00 03
0300: 77
1234: 99
1235: 66
C000: a9 32 b5 10 b1 20 a1 0e 6c ff 02 4c f5 c5 d0 fe 0a 02`
	cpu := loadCPUWith(t, dump)
	cpu.X = 0x02
	cpu.Y = 0x01

	tests := []struct {
		pc   uint16
		want string
	}{
		{0xC000, "LDA #$32"},
		{0xC002, "LDA $10,X @ 12 = 00"},
		{0xC004, "LDA ($20),Y = 0300 @ 0301 = 00"},
		{0xC006, "LDA ($0E,X) @ 10 = 1234 = 99"},
		{0xC008, "JMP ($02FF) = 0000"},
		{0xC00B, "JMP $C5F5"},
		{0xC00E, "BNE $C00E"},
		{0xC010, "ASL A"},
		{0xC011, "KIL"},
	}
	for _, tt := range tests {
		d := cpu.Disasm(tt.pc)
		got := d.Opcode
		if d.Oper != "" {
			got += " " + d.Oper
		}
		if got != tt.want {
			t.Errorf("Disasm(%04X) = %q, want %q", tt.pc, got, tt.want)
		}
	}
}

func TestTraceFormat(t *testing.T) {
	want := []string{
		`E052  A9 32     LDA #$32                        A:00 X:01 Y:00 P:07 SP:F4 PPU:  0, 27 CYC:8`,
		`E054  20 EE E0  JSR $E0EE                       A:32 X:01 Y:00 P:05 SP:F4 PPU:241,333 CYC:29801`,
	}

	var out bytes.Buffer
	tr := newTracer(&out)

	err := tr.write(
		DisasmOp{PC: 0xE052, Buf: []byte{0xA9, 0x32}, Opcode: "LDA", Oper: "#$32"},
		cpuState{PC: 0xE052, A: 0x00, X: 0x01, Y: 0x00, P: P(0x07), SP: 0xF4, Scanline: 0, Dot: 27, Clock: 8},
	)
	if err != nil {
		t.Fatal(err)
	}
	err = tr.write(
		DisasmOp{PC: 0xE054, Buf: []byte{0x20, 0xEE, 0xE0}, Opcode: "JSR", Oper: "$E0EE"},
		cpuState{PC: 0xE054, A: 0x32, X: 0x01, Y: 0x00, P: P(0x05), SP: 0xF4, Scanline: 241, Dot: 333, Clock: 29801},
	)
	if err != nil {
		t.Fatal(err)
	}

	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

// The trace columns before the registers hold the disassembly, the
// registers themselves start at column 48.
func TestTraceProgram(t *testing.T) {
	dump := `
0064: a2 01 ca 88 00
FFFC: 64 00`
	cpu := loadCPUWith(t, dump)
	cpu.A, cpu.X, cpu.Y = 1, 2, 3

	var out bytes.Buffer
	tr := newTracer(&out)
	for range 3 {
		err := tr.write(cpu.Disasm(cpu.PC), cpuState{
			A: cpu.A, X: cpu.X, Y: cpu.Y, P: cpu.P, SP: cpu.SP, PC: cpu.PC,
			Clock: cpu.Cycles,
		})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := cpu.Step(); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{
		`0064  A2 01     LDX #$01                        A:01 X:02 Y:03 P:24 SP:FD`,
		`0066  CA        DEX                             A:01 X:01 Y:03 P:24 SP:FD`,
		`0067  88        DEY                             A:01 X:00 Y:03 P:26 SP:FD`,
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	got := make([]string, len(lines))
	for i, line := range lines {
		got[i], _, _ = strings.Cut(line, " PPU:")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func BenchmarkTraceFormat(b *testing.B) {
	tr := newTracer(io.Discard)
	op1 := DisasmOp{PC: 0xE052, Buf: []byte{0xA9, 0x32}, Opcode: "LDA", Oper: "#$32"}
	op2 := DisasmOp{PC: 0xE054, Buf: []byte{0x20, 0xEE, 0xE0}, Opcode: "JSR", Oper: "$E0EE"}
	s1 := cpuState{PC: 0xE052, A: 0x00, X: 0x01, Y: 0x00, P: P(0x07), SP: 0xF4, Dot: 27, Clock: 8}
	s2 := cpuState{PC: 0xE054, A: 0x32, X: 0x01, Y: 0x00, P: P(0x05), SP: 0xF4, Dot: 33, Clock: 10}

	for range b.N {
		tr.write(op1, s1)
		tr.write(op2, s2)
	}
}
