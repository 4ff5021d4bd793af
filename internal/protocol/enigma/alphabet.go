package enigma

// AlphabetSize is the number of letters on every rotor.
const AlphabetSize = 26

// IsLetter reports whether c is an uppercase Latin letter.
func IsLetter(c rune) bool { return c >= 'A' && c <= 'Z' }

// ToIndex maps A..Z to 0..25. It is only defined for letters.
func ToIndex(c rune) int { return int(c - 'A') }

// ToLetter maps any integer onto A..Z modulo 26, so negative or overflowing
// intermediate sums wrap instead of needing bounds checks.
func ToLetter(i int) rune {
	i %= AlphabetSize
	if i < 0 {
		i += AlphabetSize
	}
	return rune('A' + i)
}

// shift moves c by n positions around the alphabet.
func shift(c rune, n int) rune { return ToLetter(ToIndex(c) + n) }
