package hw

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-faster/jx"

	"nescore/hw/hwio"
	"nescore/tests"
)

func TestOpcodeTable(t *testing.T) {
	for code, op := range opcodes {
		if op.Name == "" {
			t.Errorf("opcode %02X has no entry", code)
			continue
		}
		if instructions[op.Ins] == nil {
			t.Errorf("opcode %02X: %s not implemented", code, op.Name)
		}
		if op.Cycles == 0 {
			t.Errorf("opcode %02X: %s has no cycle count", code, op.Name)
		}
	}
}

func TestOpcodeLength(t *testing.T) {
	tests := []struct {
		code uint8
		want int
	}{
		{0x00, 1}, // BRK
		{0x0A, 1}, // ASL A
		{0xA9, 2}, // LDA #
		{0xA5, 2}, // LDA zp
		{0xB6, 2}, // LDX zp,Y
		{0xD0, 2}, // BNE
		{0xA1, 2}, // LDA (zp,X)
		{0xB1, 2}, // LDA (zp),Y
		{0xAD, 3}, // LDA abs
		{0xBD, 3}, // LDA abs,X
		{0x6C, 3}, // JMP (ind)
		{0x20, 3}, // JSR
	}
	for _, tt := range tests {
		op := Opcodes(tt.code)
		if got := op.Len(); got != tt.want {
			t.Errorf("%02X %s (%s): Len() = %d, want %d", tt.code, op.Name, op.Mode, got, tt.want)
		}
	}
}

// unstable opcodes, whose behavior depends on analog effects, and the
// opcodes jamming the CPU.
var skipOpcodes = map[uint8]string{
	0x8B: "unstable", 0xAB: "unstable", 0x93: "unstable", 0x9F: "unstable",
	0x9B: "unstable", 0x9C: "unstable", 0x9E: "unstable",
	0x02: "jam", 0x12: "jam", 0x22: "jam", 0x32: "jam", 0x42: "jam", 0x52: "jam",
	0x62: "jam", 0x72: "jam", 0x92: "jam", 0xB2: "jam", 0xD2: "jam", 0xF2: "jam",
}

// TestOpcodes runs the single step tests from
// github.com/SingleStepTests/65x02/tree/main/nes6502.
func TestOpcodes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long test")
	}

	dir := tests.TomHarteProcTestsPath(t)
	for code := range 256 {
		opstr := fmt.Sprintf("%02x", code)
		if why, ok := skipOpcodes[uint8(code)]; ok {
			t.Run(opstr, func(t *testing.T) { t.Skipf("skipping %s opcode", why) })
			continue
		}
		t.Run(opstr, testOpcode(filepath.Join(dir, opstr+".json")))
	}
}

type (
	cpuRegs struct {
		PC             uint16
		SP, A, X, Y, P uint8
	}
	cpuTestState struct {
		cpuRegs
		RAM [][2]uint16
	}
	cpuTestCase struct {
		Name    string
		Initial cpuTestState
		Final   cpuTestState
		Cycles  []string
	}
)

var memPool = sync.Pool{
	New: func() any { return flatMem() },
}

func testOpcode(path string) func(t *testing.T) {
	return func(t *testing.T) {
		t.Parallel()

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		tcs, err := decodeCPUTests(jx.Decode(f, 1<<16))
		if err != nil {
			t.Fatalf("%s: %s", path, err)
		}

		for _, tc := range tcs {
			mem := memPool.Get().(*hwio.Mem)
			runCPUTest(t, mem, tc)
			clear(mem.Data)
			memPool.Put(mem)
			if t.Failed() {
				return
			}
		}
	}
}

func runCPUTest(t *testing.T, mem *hwio.Mem, tc cpuTestCase) {
	t.Helper()

	cpu := NewCPU(mem)
	cpu.PC = tc.Initial.PC
	cpu.SP = tc.Initial.SP
	cpu.A = tc.Initial.A
	cpu.X = tc.Initial.X
	cpu.Y = tc.Initial.Y
	cpu.P = P(tc.Initial.P)
	for _, row := range tc.Initial.RAM {
		mem.Data[row[0]] = uint8(row[1])
	}

	if testing.Verbose() {
		t.Logf("%s: %s", tc.Name, cpu.Disasm(cpu.PC))
	}

	n, err := cpu.Step()
	if err != nil {
		t.Errorf("%s: %s", tc.Name, err)
		return
	}

	got := cpuRegs{PC: cpu.PC, SP: cpu.SP, A: cpu.A, X: cpu.X, Y: cpu.Y, P: uint8(cpu.P)}
	want := tc.Final.cpuRegs
	if got != want {
		t.Errorf("%s: registers mismatch\ngot:  PC=%04X SP=%02X A=%02X X=%02X Y=%02X P=%02X(%s)\nwant: PC=%04X SP=%02X A=%02X X=%02X Y=%02X P=%02X(%s)",
			tc.Name,
			got.PC, got.SP, got.A, got.X, got.Y, got.P, P(got.P),
			want.PC, want.SP, want.A, want.X, want.Y, want.P, P(want.P))
	}
	if n != len(tc.Cycles) {
		t.Errorf("%s: took %d cycles, want %d\nbus activity:\n%s", tc.Name, n, len(tc.Cycles), strings.Join(tc.Cycles, "\n"))
	}
	for _, row := range tc.Final.RAM {
		if got := mem.Data[row[0]]; got != uint8(row[1]) {
			t.Errorf("%s: ram[$%04X] = $%02X, want $%02X", tc.Name, row[0], got, row[1])
		}
	}
}

func decodeCPUTests(d *jx.Decoder) ([]cpuTestCase, error) {
	var tcs []cpuTestCase
	err := d.Arr(func(d *jx.Decoder) error {
		var tc cpuTestCase
		err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "name":
				tc.Name, err = d.Str()
			case "initial":
				err = tc.Initial.decode(d)
			case "final":
				err = tc.Final.decode(d)
			case "cycles":
				tc.Cycles, err = decodeCycles(d)
			default:
				err = d.Skip()
			}
			return err
		})
		tcs = append(tcs, tc)
		return err
	})
	return tcs, err
}

func (s *cpuTestState) decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "pc":
			s.PC, err = d.UInt16()
		case "s":
			s.SP, err = d.UInt8()
		case "a":
			s.A, err = d.UInt8()
		case "x":
			s.X, err = d.UInt8()
		case "y":
			s.Y, err = d.UInt8()
		case "p":
			s.P, err = d.UInt8()
		case "ram":
			err = d.Arr(func(d *jx.Decoder) error {
				var row [2]uint16
				i := 0
				err := d.Arr(func(d *jx.Decoder) error {
					v, err := d.UInt16()
					if i < len(row) {
						row[i] = v
					}
					i++
					return err
				})
				s.RAM = append(s.RAM, row)
				return err
			})
		default:
			err = d.Skip()
		}
		return err
	})
}

// decodeCycles decodes the bus activity, formatting each cycle as a string.
func decodeCycles(d *jx.Decoder) ([]string, error) {
	var cycles []string
	err := d.Arr(func(d *jx.Decoder) error {
		var fields []string
		err := d.Arr(func(d *jx.Decoder) error {
			switch d.Next() {
			case jx.String:
				s, err := d.Str()
				fields = append(fields, s)
				return err
			default:
				v, err := d.Int()
				fields = append(fields, fmt.Sprintf("%04X", v))
				return err
			}
		})
		cycles = append(cycles, strings.Join(fields, " "))
		return err
	})
	return cycles, err
}
