package cpu

import (
	"github.com/thelolagemann/lr35902/pkg/log"
)

// CPU represents the Gameboy CPU. It is responsible for executing
// instructions against its register file. Fetching, decoding, timing
// and interrupts are left to whatever drives Execute.
type CPU struct {
	// Registers contains the 8-bit registers and the flags, as well
	// as the 16-bit register pair accessors.
	Registers

	log log.Logger
}

// NewCPU creates a new CPU with every register cleared.
func NewCPU(opts ...Opt) *CPU {
	c := &CPU{
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute runs a single instruction to completion.
//
// Instructions the CPU cannot execute return an error matching
// ErrUnimplemented, and leave the register file untouched.
func (c *CPU) Execute(ins Instruction) error {
	var err error
	switch ins.Opcode {
	case OpAdd:
		err = c.accumulate(ins, c.add)
	case OpAdc:
		err = c.accumulate(ins, c.adc)
	case OpSub:
		err = c.accumulate(ins, c.sub)
	case OpSbc:
		err = c.accumulate(ins, c.sbc)
	case OpAnd:
		err = c.accumulate(ins, c.and)
	case OpXor:
		err = c.accumulate(ins, c.xor)
	case OpOr:
		err = c.accumulate(ins, c.or)
	case OpCp:
		err = c.compare(ins)
	case OpInc:
		err = c.modify(ins, c.increment)
	case OpDec:
		err = c.modify(ins, c.decrement)
	default:
		err = unimplemented(ins, "unknown opcode")
	}

	if err != nil {
		c.log.Debugf("%s", err)
		return err
	}
	c.log.Debugf("%-10s %s", ins, &c.Registers)
	return nil
}

// accumulate stores the result of fn applied to the operand of ins in A.
func (c *CPU) accumulate(ins Instruction, fn func(uint8) uint8) error {
	value, err := c.operand(ins)
	if err != nil {
		return err
	}
	c.A = fn(value)
	return nil
}

// compare subtracts the operand of ins from A, keeping only the flags.
func (c *CPU) compare(ins Instruction) error {
	value, err := c.operand(ins)
	if err != nil {
		return err
	}
	c.sub(value)
	return nil
}

// modify replaces the register selected by ins with fn applied to it.
func (c *CPU) modify(ins Instruction, fn func(uint8) uint8) error {
	reg, err := c.location(ins)
	if err != nil {
		return err
	}
	*reg = fn(*reg)
	return nil
}

// operand returns the value selected by the target of ins.
func (c *CPU) operand(ins Instruction) (uint8, error) {
	if ins.Target == TargetD8 {
		return ins.Immediate, nil
	}
	reg, err := c.location(ins)
	if err != nil {
		return 0, err
	}
	return *reg, nil
}

// location resolves the target of ins to a writable register. Every
// target other than an 8-bit register is reported as unimplemented.
func (c *CPU) location(ins Instruction) (*uint8, error) {
	switch ins.Target {
	case TargetD8:
		return nil, unimplemented(ins, "immediate is not writable")
	case TargetHLI:
		return nil, unimplemented(ins, "memory operands require a bus")
	}
	if reg := c.register(ins.Target); reg != nil {
		return reg, nil
	}
	return nil, unimplemented(ins, "unknown target")
}

func unimplemented(ins Instruction, reason string) error {
	return &UnimplementedError{Instruction: ins, Reason: reason}
}
