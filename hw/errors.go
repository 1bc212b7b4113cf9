package hw

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned when an opcode byte has no entry in the
	// opcode table.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrUnimplemented is wrapped by UnimplementedError.
	ErrUnimplemented = errors.New("instruction not implemented")

	// ErrCPUJam is returned after the CPU executed a KIL opcode. The CPU
	// stays locked until reset.
	ErrCPUJam = errors.New("cpu jammed")
)

// UnimplementedError reports an opcode whose instruction has no
// implementation.
type UnimplementedError struct {
	Opcode uint8
	Name   string
	PC     uint16
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s ($%02X) at $%04X: %s", e.Name, e.Opcode, e.PC, ErrUnimplemented)
}

func (e *UnimplementedError) Unwrap() error {
	return ErrUnimplemented
}
