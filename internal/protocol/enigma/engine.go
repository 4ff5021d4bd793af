package enigma

import (
	"strings"

	"enigma/internal/domain"
)

// Engine is a configured machine. Its plugboard and wiring are fixed at
// construction; only the rotor offsets change, one step per letter.
type Engine struct {
	rotors    *RotorSet
	plugboard Plugboard
	initial   [domain.RotorCount]int
}

// New builds an engine from settings. It fails with domain.ErrUnknownRotorType,
// domain.ErrRotorCount or domain.ErrInvalidPosition and never returns a
// partially configured engine.
func New(settings domain.Settings) (*Engine, error) {
	rotors, err := NewRotorSet(settings.Rotors, settings.Positions)
	if err != nil {
		return nil, err
	}
	return &Engine{
		rotors:    rotors,
		plugboard: NewPlugboard(settings.Plugboard),
		initial:   rotors.Offsets(),
	}, nil
}

// Reset returns the rotors to the start positions captured by New.
func (e *Engine) Reset() { e.rotors.SetOffsets(e.initial) }

// Positions returns the current rotor window letters, left to right.
func (e *Engine) Positions() string { return e.rotors.Positions() }

// Offsets returns the current rotor offsets, left to right.
func (e *Engine) Offsets() [domain.RotorCount]int { return e.rotors.Offsets() }

// EncryptChar transforms one letter. Anything other than A-Z is returned
// unchanged and does not step the rotors.
func (e *Engine) EncryptChar(c rune) rune {
	if !IsLetter(c) {
		return c
	}
	e.rotors.Step()

	c = e.plugboard.Apply(c)
	for i := domain.RotorCount - 1; i >= 0; i-- {
		c = e.rotors.Forward(c, i)
	}
	c = Reflect(c)
	for i := 0; i < domain.RotorCount; i++ {
		c = e.rotors.Backward(c, i)
	}
	return e.plugboard.Apply(c)
}

// Encrypt transforms every letter A-Z in message, in order. All other
// characters, including lowercase letters, are dropped from the output.
// Decryption is the same operation from the same start positions.
func (e *Engine) Encrypt(message string) string {
	var b strings.Builder
	b.Grow(len(message))
	for _, c := range message {
		if IsLetter(c) {
			b.WriteRune(e.EncryptChar(c))
		}
	}
	return b.String()
}
