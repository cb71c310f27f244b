package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/lr35902/internal/cpu"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line string
		want cpu.Instruction
	}{
		{"ADD A, C", cpu.Instruction{Opcode: cpu.OpAdd, Target: cpu.TargetC}},
		{"add c", cpu.Instruction{Opcode: cpu.OpAdd, Target: cpu.TargetC}},
		{"  ADC A,(hl)  ", cpu.Instruction{Opcode: cpu.OpAdc, Target: cpu.TargetHLI}},
		{"SUB A, B", cpu.Instruction{Opcode: cpu.OpSub, Target: cpu.TargetB}},
		{"sbc\ta, a", cpu.Instruction{Opcode: cpu.OpSbc, Target: cpu.TargetA}},
		{"CP 0x3C ; compare", cpu.Instruction{Opcode: cpu.OpCp, Target: cpu.TargetD8, Immediate: 0x3C}},
		{"AND 0x10 + 2", cpu.Instruction{Opcode: cpu.OpAnd, Target: cpu.TargetD8, Immediate: 0x12}},
		{"OR 1 << 4", cpu.Instruction{Opcode: cpu.OpOr, Target: cpu.TargetD8, Immediate: 0x10}},
		{"XOR 255", cpu.Instruction{Opcode: cpu.OpXor, Target: cpu.TargetD8, Immediate: 0xFF}},
		{"INC H", cpu.Instruction{Opcode: cpu.OpInc, Target: cpu.TargetH}},
		{"dec (HL)", cpu.Instruction{Opcode: cpu.OpDec, Target: cpu.TargetHLI}},
	}

	for _, entry := range table {
		got, err := Parse(entry.line)
		if assert.NoError(err, entry.line) {
			assert.Equal(entry.want, got, entry.line)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line string
		err  error
	}{
		{"", ErrOpcodeMissing},
		{"; only a comment", ErrOpcodeMissing},
		{"LD A, B", ErrOpcodeInvalid},
		{"ADD", ErrOperandCount},
		{"INC A, B", ErrOperandCount},
		{"ADD B, C", ErrTargetInvalid},
		{"INC 0x10", ErrTargetInvalid},
		{"ADD A, 0x100", ErrImmediateRange},
		{"SUB -1", ErrImmediateRange},
		{"CP \"x\"", ErrNotInteger},
	}

	for _, entry := range table {
		_, err := Parse(entry.line)
		assert.ErrorIs(err, entry.err, entry.line)
	}

	var exprErr *ExpressionError
	for _, line := range []string{"ADD A, 1 +", "ADD 1\nx = 2", "CP x = 2"} {
		_, err := Parse(line)
		assert.ErrorAs(err, &exprErr, line)
	}
}

// TestParse_RoundTrip checks every instruction parses back from its
// own String form.
func TestParse_RoundTrip(t *testing.T) {
	for _, op := range cpu.Opcodes() {
		for _, target := range cpu.Targets() {
			ins := cpu.Instruction{Opcode: op, Target: target}
			if target == cpu.TargetD8 {
				if op == cpu.OpInc || op == cpu.OpDec {
					continue
				}
				ins.Immediate = 0x5A
			}

			got, err := Parse(ins.String())
			require.NoError(t, err, ins.String())
			assert.Equal(t, ins, got)
		}
	}
}

func TestParseProgram(t *testing.T) {
	src := `
; add C to A, then compare
ADD A, C

CP 0x0F ; equal?
INC B
`
	program, err := ParseProgram(src)
	require.NoError(t, err)
	assert.Equal(t, []cpu.Instruction{
		{Opcode: cpu.OpAdd, Target: cpu.TargetC},
		{Opcode: cpu.OpCp, Target: cpu.TargetD8, Immediate: 0x0F},
		{Opcode: cpu.OpInc, Target: cpu.TargetB},
	}, program)

	_, err = ParseProgram("ADD A, C\nJP 0x100\n")
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 2, syntaxErr.LineNo)
	assert.Equal(t, "JP 0x100", syntaxErr.Line)
	assert.ErrorIs(t, err, ErrOpcodeInvalid)
}
