package cpu

import "fmt"

// Decode returns the instruction encoded by opcode. operand is the byte
// following opcode in memory, and is only used by opcodes for which
// Length returns 2.
//
// Only the ALU groups are decoded:
//
//	10 ooo rrr  ALU A, r     (0x80 - 0xBF)
//	11 ooo 110  ALU A, d8    (0xC6, 0xCE, ... 0xFE)
//	00 rrr 10x  INC/DEC r    (0x04, 0x05, ... 0x3D)
func Decode(opcode, operand uint8) (Instruction, error) {
	switch {
	case opcode>>6 == 2:
		return Instruction{
			Opcode: Opcode(opcode >> 3 & 0x7),
			Target: Target(opcode & 0x7),
		}, nil
	case opcode>>6 == 3 && opcode&0x7 == 6:
		return Instruction{
			Opcode:    Opcode(opcode >> 3 & 0x7),
			Target:    TargetD8,
			Immediate: operand,
		}, nil
	case opcode>>6 == 0 && opcode&0x6 == 0x4:
		op := OpInc
		if opcode&1 == 1 {
			op = OpDec
		}
		return Instruction{
			Opcode: op,
			Target: Target(opcode >> 3 & 0x7),
		}, nil
	}
	return Instruction{}, fmt.Errorf("%w: 0x%02X", ErrUnknownOpcode, opcode)
}

// Length returns the number of bytes occupied by opcode and its operands.
func Length(opcode uint8) int {
	if opcode>>6 == 3 && opcode&0x7 == 6 {
		return 2
	}
	return 1
}
