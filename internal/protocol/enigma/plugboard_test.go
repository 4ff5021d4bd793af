package enigma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlugboard_Symmetric(t *testing.T) {
	pairs := []string{"AB", "CD", "XZ"}
	p := NewPlugboard(pairs)
	for _, pair := range pairs {
		a, b := rune(pair[0]), rune(pair[1])
		assert.Equal(t, b, p.Apply(a))
		assert.Equal(t, a, p.Apply(b))
	}
	for _, c := range "EFGHIJKLMNOPQRSTUVWY" {
		assert.Equalf(t, c, p.Apply(c), "unplugged %q", c)
	}
}

func TestPlugboard_IgnoresMalformedPairs(t *testing.T) {
	p := NewPlugboard([]string{"A", "BCD", "", "E1", "ef", "GH"})
	assert.Len(t, p, 2)
	assert.Equal(t, 'H', p.Apply('G'))
	assert.Equal(t, 'A', p.Apply('A'))
	assert.Equal(t, 'E', p.Apply('E'))
}

func TestPlugboard_RepeatedLetterLastWriteWins(t *testing.T) {
	p := NewPlugboard([]string{"AB", "AC"})
	assert.Equal(t, 'C', p.Apply('A'))
	assert.Equal(t, 'A', p.Apply('B'))
	assert.Equal(t, 'A', p.Apply('C'))
}

func TestPlugboard_EmptyIsIdentity(t *testing.T) {
	p := NewPlugboard(nil)
	for c := 'A'; c <= 'Z'; c++ {
		assert.Equal(t, c, p.Apply(c))
	}
	assert.Equal(t, '?', p.Apply('?'))
}

func TestDuplicateLetters(t *testing.T) {
	assert.Empty(t, DuplicateLetters([]string{"AB", "CD"}))
	assert.Equal(t, []rune{'A'}, DuplicateLetters([]string{"AB", "AC"}))
	assert.Equal(t, []rune{'B', 'C'}, DuplicateLetters([]string{"AB", "CD", "BC", "X"}))
	assert.Empty(t, DuplicateLetters([]string{"AA"}))
}
