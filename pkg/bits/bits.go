package bits

import "golang.org/x/exp/constraints"

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// From returns a byte with only bit i set if set is true, and 0 otherwise.
func From(set bool, i uint8) uint8 {
	if set {
		return 1 << i
	}
	return 0
}

// Combine joins high and low into a 16-bit value, high byte first.
func Combine(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split is the inverse of Combine.
func Split(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value)
}
