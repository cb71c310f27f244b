package cpu

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/bits"
)

// Registers is the LR35902 register file. The 16-bit pairs AF, BC,
// DE and HL have no storage of their own and are always derived from
// the 8-bit registers.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	// F is the flags register.
	F Flags
}

// AF returns A and F as a 16-bit value. The low nibble is always 0.
func (r *Registers) AF() uint16 {
	return bits.Combine(r.A, r.F.Byte())
}

// SetAF sets A to the high byte of value and F to the flags of the
// low byte. Bits 3-0 of value are discarded, so AF reads back as
// value & 0xFFF0.
func (r *Registers) SetAF(value uint16) {
	var low uint8
	r.A, low = bits.Split(value)
	r.F = FlagsFromByte(low)
}

func (r *Registers) BC() uint16 {
	return bits.Combine(r.B, r.C)
}

func (r *Registers) SetBC(value uint16) {
	r.B, r.C = bits.Split(value)
}

func (r *Registers) DE() uint16 {
	return bits.Combine(r.D, r.E)
}

func (r *Registers) SetDE(value uint16) {
	r.D, r.E = bits.Split(value)
}

func (r *Registers) HL() uint16 {
	return bits.Combine(r.H, r.L)
}

func (r *Registers) SetHL(value uint16) {
	r.H, r.L = bits.Split(value)
}

// register returns a pointer to the 8-bit register named by t, or nil
// if t does not name a register.
func (r *Registers) register(t Target) *uint8 {
	switch t {
	case TargetA:
		return &r.A
	case TargetB:
		return &r.B
	case TargetC:
		return &r.C
	case TargetD:
		return &r.D
	case TargetE:
		return &r.E
	case TargetH:
		return &r.H
	case TargetL:
		return &r.L
	}
	return nil
}

var _ types.Stater = (*Registers)(nil)

// Save writes A, F, B, C, D, E, H and L to s in that order.
func (r *Registers) Save(s *types.State) {
	s.Write8(r.A)
	s.Write8(r.F.Byte())
	s.Write8(r.B)
	s.Write8(r.C)
	s.Write8(r.D)
	s.Write8(r.E)
	s.Write8(r.H)
	s.Write8(r.L)
}

// Load restores the registers written by Save. The register file is
// left untouched if s is too short.
func (r *Registers) Load(s *types.State) error {
	var v [8]uint8
	for i := range v {
		b, err := s.Read8()
		if err != nil {
			return fmt.Errorf("loading registers: %w", err)
		}
		v[i] = b
	}

	r.A, r.F = v[0], FlagsFromByte(v[1])
	r.B, r.C = v[2], v[3]
	r.D, r.E = v[4], v[5]
	r.H, r.L = v[6], v[7]
	return nil
}

// Fingerprint returns a hash of the register file. Two register files
// with equal contents always have the same fingerprint.
func (r *Registers) Fingerprint() uint64 {
	s := types.NewState()
	r.Save(s)
	return xxhash.Sum64(s.Bytes())
}

func (r *Registers) String() string {
	return fmt.Sprintf("A:%02X F:%s BC:%04X DE:%04X HL:%04X", r.A, r.F, r.BC(), r.DE(), r.HL())
}
