package cpu

import "github.com/thelolagemann/lr35902/pkg/bits"

// Flag is the bit position of a condition flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the condition flags of the F register. Only the upper
// nibble of F is backed by flags, the lower nibble always reads as 0.
type Flags struct {
	Zero      bool // Z - result of the last operation was 0
	Subtract  bool // N - last operation was a subtraction
	HalfCarry bool // H - carry out of bit 3
	Carry     bool // C - carry out of bit 7
}

// Byte packs the flags into the F register layout.
func (f Flags) Byte() uint8 {
	return bits.From(f.Zero, FlagZero) |
		bits.From(f.Subtract, FlagSubtract) |
		bits.From(f.HalfCarry, FlagHalfCarry) |
		bits.From(f.Carry, FlagCarry)
}

// FlagsFromByte unpacks b into Flags. Bits 3-0 are ignored.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      bits.Test(b, FlagZero),
		Subtract:  bits.Test(b, FlagSubtract),
		HalfCarry: bits.Test(b, FlagHalfCarry),
		Carry:     bits.Test(b, FlagCarry),
	}
}

// String returns the flags as ZNHC, with cleared flags shown as '-'.
func (f Flags) String() string {
	s := []byte("ZNHC")
	for i, set := range [4]bool{f.Zero, f.Subtract, f.HalfCarry, f.Carry} {
		if !set {
			s[i] = '-'
		}
	}
	return string(s)
}

// setFlags replaces all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = Flags{
		Zero:      zero,
		Subtract:  subtract,
		HalfCarry: halfCarry,
		Carry:     carry,
	}
}
