package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRotorType(t *testing.T) {
	for _, r := range RotorTypes() {
		got, err := ParseRotorType(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ParseRotorType("IV")
	assert.ErrorIs(t, err, ErrUnknownRotorType)
	_, err = ParseRotorType("ii")
	assert.ErrorIs(t, err, ErrUnknownRotorType)
	assert.Equal(t, "RotorType(0)", RotorType(0).String())
}

func TestParseRotorOrder(t *testing.T) {
	order, err := ParseRotorOrder([]string{"III", " I ", "II"})
	require.NoError(t, err)
	assert.Equal(t, [RotorCount]RotorType{RotorIII, RotorI, RotorII}, order)

	_, err = ParseRotorOrder([]string{"I", "II"})
	assert.ErrorIs(t, err, ErrRotorCount)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		want error
	}{
		{"default", DefaultSettings(), nil},
		{"repeated rotor allowed", Settings{Rotors: []string{"I", "I", "I"}, Positions: "ZZZ"}, nil},
		{"unknown rotor", Settings{Rotors: []string{"I", "II", "V"}, Positions: "AAA"}, ErrUnknownRotorType},
		{"missing rotor", Settings{Rotors: []string{"I", "II"}, Positions: "AAA"}, ErrRotorCount},
		{"long positions", Settings{Rotors: []string{"I", "II", "III"}, Positions: "AAAA"}, ErrInvalidPosition},
		{"lowercase position", Settings{Rotors: []string{"I", "II", "III"}, Positions: "AaA"}, ErrInvalidPosition},
		{"symbol position", Settings{Rotors: []string{"I", "II", "III"}, Positions: "A-A"}, ErrInvalidPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNormalizeSettings(t *testing.T) {
	got := NormalizeSettings(Settings{
		Rotors:    []string{"iii", " i", "Ii "},
		Positions: " qev ",
		Plugboard: []string{"ab cd", " ef"},
	})
	assert.Equal(t, Settings{
		Rotors:    []string{"III", "I", "II"},
		Positions: "QEV",
		Plugboard: []string{"AB", "CD", "EF"},
	}, got)
	require.NoError(t, got.Validate())
}

func TestParsePlugboard(t *testing.T) {
	assert.Equal(t, []string{"AB", "CD"}, ParsePlugboard("ab  cd\n"))
	assert.Nil(t, ParsePlugboard("   "))
}

func TestSettingsClone(t *testing.T) {
	s := Settings{Rotors: []string{"I", "II", "III"}, Positions: "AAA", Plugboard: []string{"AB"}}
	c := s.Clone()
	c.Rotors[0] = "III"
	c.Plugboard[0] = "CD"
	assert.Equal(t, "I", s.Rotors[0])
	assert.Equal(t, "AB", s.Plugboard[0])
}
