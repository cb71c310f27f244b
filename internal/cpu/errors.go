package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnimplemented is matched by every error returned from Execute.
	ErrUnimplemented = errors.New("unimplemented instruction")
	// ErrUnknownOpcode is returned by Decode for bytes it cannot decode.
	ErrUnknownOpcode = errors.New("unknown opcode")
)

// UnimplementedError describes an instruction the CPU could not execute.
// The register file is unchanged when it is returned.
type UnimplementedError struct {
	Instruction Instruction
	Reason      string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrUnimplemented, e.Instruction, e.Reason)
}

func (e *UnimplementedError) Unwrap() error {
	return ErrUnimplemented
}
