package enigma

import (
	"fmt"
	"strings"

	"enigma/internal/domain"
)

// Rotor is one fixed wiring plus the letter that carries the next rotor.
type Rotor struct {
	Type   domain.RotorType
	wiring string
	notch  rune
}

// NewRotor returns the rotor wired for t.
func NewRotor(t domain.RotorType) (Rotor, error) {
	wiring, notch, ok := rotorSpec(t)
	if !ok {
		return Rotor{}, fmt.Errorf("%w: %s", domain.ErrUnknownRotorType, t)
	}
	return Rotor{Type: t, wiring: wiring, notch: notch}, nil
}

func rotorSpec(t domain.RotorType) (wiring string, notch rune, ok bool) {
	switch t {
	case domain.RotorI:
		return "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'Q', true
	case domain.RotorII:
		return "AJDKSIRUXBLHWTMCQGZNPYFVOE", 'E', true
	case domain.RotorIII:
		return "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'V', true
	}
	return "", 0, false
}

// Wiring returns the rotor's substitution table, A first.
func (r Rotor) Wiring() string { return r.wiring }

// Notch returns the letter that, when stepped onto, carries the next rotor.
func (r Rotor) Notch() rune { return r.notch }

// Forward passes c right to left through the rotor turned by offset.
func (r Rotor) Forward(c rune, offset int) rune {
	in := ToIndex(c) + offset
	out := rune(r.wiring[ToIndex(ToLetter(in))])
	return shift(out, -offset)
}

// Backward passes c left to right through the rotor turned by offset.
// It is the inverse of Forward at the same offset.
func (r Rotor) Backward(c rune, offset int) rune {
	in := shift(c, offset)
	return ToLetter(strings.IndexRune(r.wiring, in) - offset)
}

// RotorSet holds the three rotors, left to right, and their current offsets.
type RotorSet struct {
	rotors  [domain.RotorCount]Rotor
	offsets [domain.RotorCount]int
}

// NewRotorSet resolves three rotor names and their start letters, left to right.
func NewRotorSet(names []string, positions string) (*RotorSet, error) {
	order, err := domain.ParseRotorOrder(names)
	if err != nil {
		return nil, err
	}
	offsets, err := parsePositions(positions)
	if err != nil {
		return nil, err
	}
	s := &RotorSet{offsets: offsets}
	for i, t := range order {
		if s.rotors[i], err = NewRotor(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func parsePositions(positions string) ([domain.RotorCount]int, error) {
	var offsets [domain.RotorCount]int
	letters := []rune(positions)
	if len(letters) != domain.RotorCount {
		return offsets, fmt.Errorf("%w: %q must be %d letters", domain.ErrInvalidPosition, positions, domain.RotorCount)
	}
	for i, c := range letters {
		if !IsLetter(c) {
			return offsets, fmt.Errorf("%w: %q", domain.ErrInvalidPosition, c)
		}
		offsets[i] = ToIndex(c)
	}
	return offsets, nil
}

// Step advances the rotors for one key press.
//
// The middle rotor's notch is checked against its stored offset after the
// right rotor's carry, whether or not the middle rotor moved on this press.
func (s *RotorSet) Step() {
	const left, middle, right = 0, 1, 2

	s.offsets[right] = (s.offsets[right] + 1) % AlphabetSize
	if ToLetter(s.offsets[right]) == s.rotors[right].notch {
		s.offsets[middle] = (s.offsets[middle] + 1) % AlphabetSize
	}
	if ToLetter(s.offsets[middle]) == s.rotors[middle].notch {
		s.offsets[left] = (s.offsets[left] + 1) % AlphabetSize
	}
}

// Forward passes c through rotor i at its current offset.
func (s *RotorSet) Forward(c rune, i int) rune { return s.rotors[i].Forward(c, s.offsets[i]) }

// Backward passes c back through rotor i at its current offset.
func (s *RotorSet) Backward(c rune, i int) rune { return s.rotors[i].Backward(c, s.offsets[i]) }

// Rotor returns the rotor in slot i.
func (s *RotorSet) Rotor(i int) Rotor { return s.rotors[i] }

// Offsets returns a copy of the current offsets, left to right.
func (s *RotorSet) Offsets() [domain.RotorCount]int { return s.offsets }

// SetOffsets overwrites the current offsets. Values are taken modulo 26.
func (s *RotorSet) SetOffsets(offsets [domain.RotorCount]int) {
	for i, o := range offsets {
		s.offsets[i] = ToIndex(ToLetter(o))
	}
}

// Positions returns the letters showing in the rotor windows, left to right.
func (s *RotorSet) Positions() string {
	var b strings.Builder
	for _, o := range s.offsets {
		b.WriteRune(ToLetter(o))
	}
	return b.String()
}
