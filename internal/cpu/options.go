package cpu

import "github.com/thelolagemann/lr35902/pkg/log"

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// WithLogger sets the logger each executed instruction is traced to.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithRegisters sets the initial contents of the register file.
func WithRegisters(r Registers) Opt {
	return func(c *CPU) {
		c.Registers = r
	}
}
