package asm

import (
	"errors"
	"fmt"
)

var (
	ErrOpcodeMissing  = errors.New("opcode missing")
	ErrOpcodeInvalid  = errors.New("opcode invalid")
	ErrOperandCount   = errors.New("wrong number of operands")
	ErrTargetInvalid  = errors.New("target invalid")
	ErrNotInteger     = errors.New("not an integer")
	ErrImmediateRange = errors.New("immediate out of range")
)

// SyntaxError reports the line of a program that failed to parse.
type SyntaxError struct {
	LineNo int
	Line   string
	Err    error
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("line %d '%v': %v", err.LineNo, err.Line, err.Err)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// ExpressionError reports an immediate expression that could not be
// evaluated.
type ExpressionError struct {
	Expr string
	Err  error
}

func (err *ExpressionError) Error() string {
	return fmt.Sprintf("expression '%v': %v", err.Expr, err.Err)
}

func (err *ExpressionError) Unwrap() error {
	return err.Err
}
