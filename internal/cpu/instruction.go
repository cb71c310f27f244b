package cpu

import (
	"fmt"
	"strings"
)

// Opcode identifies the operation an Instruction performs. The first
// eight values follow the order of the hardware ALU group (bits 5-3
// of opcodes 0x80-0xBF).
type Opcode uint8

const (
	OpAdd Opcode = iota
	OpAdc
	OpSub
	OpSbc
	OpAnd
	OpXor
	OpOr
	OpCp
	OpInc
	OpDec

	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	OpAdd: "ADD",
	OpAdc: "ADC",
	OpSub: "SUB",
	OpSbc: "SBC",
	OpAnd: "AND",
	OpXor: "XOR",
	OpOr:  "OR",
	OpCp:  "CP",
	OpInc: "INC",
	OpDec: "DEC",
}

// Valid reports whether o is a known opcode.
func (o Opcode) Valid() bool {
	return o < opcodeCount
}

func (o Opcode) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Opcode(%d)", uint8(o))
	}
	return opcodeNames[o]
}

// Opcodes returns every known opcode.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, opcodeCount)
	for o := Opcode(0); o < opcodeCount; o++ {
		ops = append(ops, o)
	}
	return ops
}

// ParseOpcode returns the opcode with the given mnemonic, ignoring case.
func ParseOpcode(name string) (Opcode, bool) {
	for o, n := range opcodeNames {
		if strings.EqualFold(n, name) {
			return Opcode(o), true
		}
	}
	return 0, false
}

// Target selects the operand of an Instruction. The register targets
// follow the hardware register index (bits 2-0 of an ALU opcode).
type Target uint8

const (
	TargetB Target = iota
	TargetC
	TargetD
	TargetE
	TargetH
	TargetL
	TargetHLI // (HL)
	TargetA
	TargetD8 // the Immediate of the instruction

	targetCount
)

var targetNames = [targetCount]string{
	TargetB:   "B",
	TargetC:   "C",
	TargetD:   "D",
	TargetE:   "E",
	TargetH:   "H",
	TargetL:   "L",
	TargetHLI: "(HL)",
	TargetA:   "A",
	TargetD8:  "d8",
}

// Valid reports whether t is a known target.
func (t Target) Valid() bool {
	return t < targetCount
}

func (t Target) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
	return targetNames[t]
}

// Targets returns every known target.
func Targets() []Target {
	targets := make([]Target, 0, targetCount)
	for t := Target(0); t < targetCount; t++ {
		targets = append(targets, t)
	}
	return targets
}

// ParseTarget returns the register target with the given name, ignoring
// case. Immediates are not targets by name and are never matched.
func ParseTarget(name string) (Target, bool) {
	for t, n := range targetNames {
		if Target(t) != TargetD8 && strings.EqualFold(n, name) {
			return Target(t), true
		}
	}
	return 0, false
}

// Instruction is a decoded instruction, ready to be executed.
type Instruction struct {
	Opcode Opcode
	Target Target
	// Immediate is the operand used when Target is TargetD8.
	Immediate uint8
}

// String returns the instruction in assembler syntax, e.g. "ADD A, C".
func (i Instruction) String() string {
	operand := i.Target.String()
	if i.Target == TargetD8 {
		operand = fmt.Sprintf("0x%02X", i.Immediate)
	}

	switch i.Opcode {
	case OpAdd, OpAdc, OpSbc:
		return i.Opcode.String() + " A, " + operand
	}
	return i.Opcode.String() + " " + operand
}
