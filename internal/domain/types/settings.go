package types

import (
	"fmt"
	"strings"
)

// Settings is the full machine configuration supplied at construction:
// rotor order (left to right), one start letter per rotor and the plugboard pairs.
type Settings struct {
	Rotors    []string `json:"rotors" yaml:"rotors"`
	Positions string   `json:"positions" yaml:"positions"`
	Plugboard []string `json:"plugboard,omitempty" yaml:"plugboard,omitempty"`
}

// DefaultSettings is rotors I II III at AAA with an empty plugboard.
func DefaultSettings() Settings {
	return Settings{
		Rotors:    []string{"I", "II", "III"},
		Positions: "AAA",
	}
}

// Validate checks what the front end checks before building a machine: every
// rotor is known and every start position is a single letter A-Z.
func (s Settings) Validate() error {
	if _, err := ParseRotorOrder(s.Rotors); err != nil {
		return err
	}
	if len(s.Positions) != RotorCount {
		return fmt.Errorf("%w: %q must be %d letters", ErrInvalidPosition, s.Positions, RotorCount)
	}
	for _, c := range s.Positions {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("%w: %q", ErrInvalidPosition, c)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can mutate slices freely.
func (s Settings) Clone() Settings {
	return Settings{
		Rotors:    append([]string(nil), s.Rotors...),
		Positions: s.Positions,
		Plugboard: append([]string(nil), s.Plugboard...),
	}
}

// NormalizeSettings uppercases and trims user-entered settings. It does not
// validate; call Validate afterwards.
func NormalizeSettings(s Settings) Settings {
	out := Settings{
		Rotors:    make([]string, 0, len(s.Rotors)),
		Positions: strings.ToUpper(strings.TrimSpace(s.Positions)),
	}
	for _, r := range s.Rotors {
		out.Rotors = append(out.Rotors, strings.ToUpper(strings.TrimSpace(r)))
	}
	for _, p := range s.Plugboard {
		out.Plugboard = append(out.Plugboard, ParsePlugboard(p)...)
	}
	return out
}

// ParsePlugboard splits plugboard text such as "ab cd" into uppercase pairs.
// Malformed tokens are kept; the plugboard itself ignores them.
func ParsePlugboard(text string) []string {
	fields := strings.Fields(strings.ToUpper(text))
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// KeySheet is a named, stored set of machine settings.
type KeySheet struct {
	Name       string   `json:"name" yaml:"name"`
	Settings   Settings `json:"settings" yaml:"settings"`
	CreatedUTC int64    `json:"created_utc" yaml:"created_utc"`
}

// Result describes one encryption run.
type Result struct {
	Output  string // transformed letters only
	Start   string // rotor positions before the run
	End     string // rotor positions after the run
	Letters int    // number of letters transformed
}
