package main

import (
	"fmt"
	"io"

	"github.com/thelolagemann/lr35902/internal/cpu"
)

// decodeProgram decodes code into instructions, consuming operand
// bytes as reported by cpu.Length.
func decodeProgram(code []byte) ([]cpu.Instruction, error) {
	var program []cpu.Instruction
	for pc := 0; pc < len(code); {
		opcode := code[pc]
		n := cpu.Length(opcode)
		if pc+n > len(code) {
			return nil, fmt.Errorf("0x%02X at offset %d: missing operand", opcode, pc)
		}

		var operand uint8
		if n == 2 {
			operand = code[pc+1]
		}
		ins, err := cpu.Decode(opcode, operand)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", pc, err)
		}
		program = append(program, ins)
		pc += n
	}
	return program, nil
}

// run executes program on a fresh CPU and writes one trace line per
// executed instruction to out.
func run(out io.Writer, opts *options, program []cpu.Instruction) error {
	l := opts.logger()
	c := cpu.NewCPU(cpu.WithLogger(l), cpu.WithRegisters(opts.registers()))

	trace(out, "", c)
	for i, ins := range program {
		if err := c.Execute(ins); err != nil {
			if opts.strict {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			l.Errorf("step %d: %s", i+1, err)
			continue
		}
		trace(out, ins.String(), c)
	}
	return nil
}

func trace(out io.Writer, step string, c *cpu.CPU) {
	fmt.Fprintf(out, "%-12s %s %016x\n", step, &c.Registers, c.Fingerprint())
}
