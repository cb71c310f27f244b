package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags_Byte(t *testing.T) {
	flags := Flags{Zero: true, Carry: true}
	assert.Equal(t, uint8(0b1001_0000), flags.Byte())

	assert.Equal(t, uint8(0b1000_0000), Flags{Zero: true}.Byte())
	assert.Equal(t, uint8(0b0100_0000), Flags{Subtract: true}.Byte())
	assert.Equal(t, uint8(0b0010_0000), Flags{HalfCarry: true}.Byte())
	assert.Equal(t, uint8(0b0001_0000), Flags{Carry: true}.Byte())
}

func TestFlagsFromByte(t *testing.T) {
	flags := FlagsFromByte(0b1001_0000)
	assert.True(t, flags.Zero)
	assert.True(t, flags.Carry)
	assert.False(t, flags.HalfCarry)
	assert.False(t, flags.Subtract)
}

func TestFlags_RoundTrip(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			f := Flags{
				Zero:      i&8 != 0,
				Subtract:  i&4 != 0,
				HalfCarry: i&2 != 0,
				Carry:     i&1 != 0,
			}
			assert.Equal(t, f, FlagsFromByte(f.Byte()))
		}
	})
	t.Run("bytes", func(t *testing.T) {
		for b := 0; b <= 0xFF; b++ {
			got := FlagsFromByte(uint8(b)).Byte()
			if got != uint8(b)&0b1111_0000 {
				t.Errorf("expected 0x%02X to read back as 0x%02X, got 0x%02X", b, b&0xF0, got)
			}
		}
	})
}

func TestFlags_String(t *testing.T) {
	assert.Equal(t, "----", Flags{}.String())
	assert.Equal(t, "Z--C", Flags{Zero: true, Carry: true}.String())
	assert.Equal(t, "ZNHC", FlagsFromByte(0xF0).String())
}
