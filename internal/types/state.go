package types

import "errors"

// ErrStateTruncated is returned when a State is read past its end.
var ErrStateTruncated = errors.New("state truncated")

// State is a flat byte buffer used to snapshot and
// restore component state.
type State struct {
	raw          []byte
	readPosition int
}

// Stater is implemented by anything that can be saved to and
// restored from a State.
type Stater interface {
	Load(*State) error
	Save(*State)
}

// NewState creates an empty state.
func NewState() *State {
	return &State{raw: make([]byte, 0, 16)}
}

// StateFromBytes creates a state that reads from raw.
func StateFromBytes(raw []byte) *State {
	return &State{raw: raw}
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Read8() (uint8, error) {
	if s.readPosition >= len(s.raw) {
		return 0, ErrStateTruncated
	}
	v := s.raw[s.readPosition]
	s.readPosition++
	return v, nil
}

// Bytes returns the underlying buffer.
func (s *State) Bytes() []byte {
	return s.raw
}
