// Package asm parses LR35902 assembler mnemonics into instructions for
// the cpu package. It is used by the command line harness and by tests,
// raw opcode bytes are decoded by cpu.Decode instead.
package asm

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/thelolagemann/lr35902/internal/cpu"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// maxExpressionSteps bounds the work done evaluating one immediate.
const maxExpressionSteps = 10000

// Parse parses a single instruction such as "ADD A, C", "sub 0x10" or
// "CP (HL)". For ADD, ADC and SBC the leading "A," may be omitted, and
// it is accepted for the other ALU operations. Immediate operands may
// be any integer expression, e.g. "0x10 + 2" or "1 << 4".
func Parse(line string) (cpu.Instruction, error) {
	line = strings.TrimSpace(stripComment(line))
	if line == "" {
		return cpu.Instruction{}, ErrOpcodeMissing
	}

	mnemonic, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		mnemonic, rest = line[:i], strings.TrimSpace(line[i:])
	}

	op, ok := cpu.ParseOpcode(mnemonic)
	if !ok {
		return cpu.Instruction{}, fmt.Errorf("%w: %s", ErrOpcodeInvalid, mnemonic)
	}
	incDec := op == cpu.OpInc || op == cpu.OpDec

	var operands []string
	if rest != "" {
		operands = strings.SplitN(rest, ",", 2)
		for i := range operands {
			operands[i] = strings.TrimSpace(operands[i])
		}
	}

	switch len(operands) {
	case 1:
	case 2:
		if incDec {
			return cpu.Instruction{}, fmt.Errorf("%w: %s takes 1", ErrOperandCount, op)
		}
		if !strings.EqualFold(operands[0], "A") {
			return cpu.Instruction{}, fmt.Errorf("%w: %s only operates on A, not %s", ErrTargetInvalid, op, operands[0])
		}
		operands = operands[1:]
	default:
		return cpu.Instruction{}, fmt.Errorf("%w: %s takes 1", ErrOperandCount, op)
	}

	if target, ok := cpu.ParseTarget(operands[0]); ok {
		return cpu.Instruction{Opcode: op, Target: target}, nil
	}
	if incDec {
		return cpu.Instruction{}, fmt.Errorf("%w: %s %s", ErrTargetInvalid, op, operands[0])
	}

	value, err := evalImmediate(operands[0])
	if err != nil {
		return cpu.Instruction{}, err
	}
	return cpu.Instruction{Opcode: op, Target: cpu.TargetD8, Immediate: value}, nil
}

// ParseProgram parses src one instruction per line. Blank lines and
// ';' comments are skipped.
func ParseProgram(src string) ([]cpu.Instruction, error) {
	var program []cpu.Instruction
	for n, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(stripComment(line)) == "" {
			continue
		}
		ins, err := Parse(line)
		if err != nil {
			return nil, &SyntaxError{LineNo: n + 1, Line: strings.TrimSpace(line), Err: err}
		}
		program = append(program, ins)
	}
	return program, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

// evalImmediate evaluates expr as a single Starlark expression and
// checks it fits a byte.
func evalImmediate(expr string) (uint8, error) {
	thread := &starlark.Thread{Name: "immediate"}
	thread.SetMaxExecutionSteps(maxExpressionSteps)

	opts := syntax.FileOptions{}
	v, err := starlark.EvalOptions(&opts, thread, "immediate", expr, nil)
	if err != nil {
		return 0, &ExpressionError{Expr: expr, Err: err}
	}

	rc, ok := v.(starlark.Int)
	if !ok {
		return 0, &ExpressionError{Expr: expr, Err: ErrNotInteger}
	}
	if v, ok := rc.Int64(); ok && v >= 0 && v <= 0xFF {
		return uint8(v), nil
	}
	return 0, fmt.Errorf("%w: %s = %s", ErrImmediateRange, expr, rc)
}
