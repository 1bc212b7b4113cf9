package hw

import (
	"fmt"
	"io"
)

// cpuState stores the CPU state for the execution trace.
type cpuState struct {
	A, X, Y uint8
	P       P
	SP      uint8
	PC      uint16

	Clock    int64
	Dot      int
	Scanline int
}

// tracer writes an execution trace in the nestest.log format:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
type tracer struct {
	w   io.Writer
	buf []byte
}

func newTracer(w io.Writer) *tracer {
	return &tracer{w: w, buf: make([]byte, 0, 96)}
}

// write the execution trace of the instruction about to be executed.
func (t *tracer) write(op DisasmOp, state cpuState) error {
	buf := op.appendTo(t.buf[:0])
	buf = fmt.Appendf(buf, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d\n",
		state.A, state.X, state.Y, uint8(state.P), state.SP,
		state.Scanline, state.Dot, state.Clock)
	t.buf = buf
	_, err := t.w.Write(buf)
	return err
}
