package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/lr35902/internal/cpu"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExec(t *testing.T) {
	out, err := execute(t, "exec", "--af", "0x0A00", "--bc", "0x0005", "ADD A, C", "CP 0x0F")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "A:0A F:---- BC:0005")
	assert.True(t, strings.HasPrefix(lines[1], "ADD A, C"))
	assert.Contains(t, lines[1], "A:0F F:---- BC:0005")
	assert.Contains(t, lines[2], "A:0F F:ZN-- BC:0005")
}

func TestExec_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "program.s")
	require.NoError(t, os.WriteFile(file, []byte("; increment B twice\nINC B\nINC B\n"), 0644))

	out, err := execute(t, "exec", "--file", file, "DEC B")
	require.NoError(t, err)
	assert.Contains(t, out, "INC B")
	assert.Contains(t, strings.TrimSpace(out), "BC:0100")
}

func TestExec_Errors(t *testing.T) {
	_, err := execute(t, "exec")
	assert.EqualError(t, err, "no instructions given")

	_, err = execute(t, "exec", "LD A, B")
	assert.Error(t, err)

	// without --strict unimplemented instructions are skipped
	out, err := execute(t, "exec", "ADD A, (HL)", "INC A")
	require.NoError(t, err)
	assert.NotContains(t, out, "(HL)")
	assert.Contains(t, out, "A:01")

	_, err = execute(t, "exec", "--strict", "ADD A, (HL)", "INC A")
	assert.ErrorIs(t, err, cpu.ErrUnimplemented)
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "decode", "--af", "0xFF00", "80", "C6 01")
	require.NoError(t, err)
	assert.Contains(t, out, "ADD A, B")
	assert.Contains(t, out, "ADD A, 0x01")
	assert.Contains(t, out, "A:00 F:Z-HC")

	_, err = execute(t, "decode", "C6")
	assert.Error(t, err)

	_, err = execute(t, "decode", "76")
	assert.ErrorIs(t, err, cpu.ErrUnknownOpcode)
}

func TestDecodeProgram(t *testing.T) {
	program, err := decodeProgram([]byte{0x81, 0xFE, 0x3C, 0x04})
	require.NoError(t, err)
	assert.Equal(t, []cpu.Instruction{
		{Opcode: cpu.OpAdd, Target: cpu.TargetC},
		{Opcode: cpu.OpCp, Target: cpu.TargetD8, Immediate: 0x3C},
		{Opcode: cpu.OpInc, Target: cpu.TargetB},
	}, program)
}
