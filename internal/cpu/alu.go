package cpu

// The ALU routines below compute a result and set the flags for it.
// None of them write the A register, the caller decides where the
// result goes.

// add adds value to the A register.
//
//	ADD A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(value uint8) uint8 {
	return c.addWithCarry(value, false)
}

// adc adds value plus the carry flag to the A register.
//
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) adc(value uint8) uint8 {
	return c.addWithCarry(value, c.F.Carry)
}

func (c *CPU) addWithCarry(value uint8, carry bool) uint8 {
	var carryIn uint16
	if carry {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(value) + carryIn
	sumHalf := uint16(c.A&0xF) + uint16(value&0xF) + carryIn

	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	return uint8(sum)
}

// sub subtracts value from the A register.
//
//	SUB n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(value uint8) uint8 {
	return c.subWithCarry(value, false)
}

// sbc subtracts value plus the carry flag from the A register.
//
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sbc(value uint8) uint8 {
	return c.subWithCarry(value, c.F.Carry)
}

func (c *CPU) subWithCarry(value uint8, carry bool) uint8 {
	var carryIn int16
	if carry {
		carryIn = 1
	}
	diff := int16(c.A) - int16(value) - carryIn
	diffHalf := int16(c.A&0xF) - int16(value&0xF) - carryIn

	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	return uint8(diff)
}

// and performs a bitwise AND of value and the A register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(value uint8) uint8 {
	result := c.A & value
	c.setFlags(result == 0, false, true, false)
	return result
}

// or performs a bitwise OR of value and the A register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(value uint8) uint8 {
	result := c.A | value
	c.setFlags(result == 0, false, false, false)
	return result
}

// xor performs a bitwise XOR of value and the A register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(value uint8) uint8 {
	result := c.A ^ value
	c.setFlags(result == 0, false, false, false)
	return result
}

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 1
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.F.Carry)
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 1
	c.setFlags(decremented == 0, true, value&0xF == 0x0, c.F.Carry)
	return decremented
}
