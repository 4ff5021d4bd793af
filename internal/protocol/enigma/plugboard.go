package enigma

// Plugboard swaps letters in pairs before and after the rotors.
// Letters without a cable map to themselves.
type Plugboard map[rune]rune

// NewPlugboard wires a plugboard from pairs such as "AB". Pairs that are not
// exactly two letters A-Z are ignored. A letter used in more than one pair
// keeps the mapping of the last pair, in input order.
func NewPlugboard(pairs []string) Plugboard {
	p := make(Plugboard, 2*len(pairs))
	for _, pair := range pairs {
		a, b, ok := splitPair(pair)
		if !ok {
			continue
		}
		p[a] = b
		p[b] = a
	}
	return p
}

// Apply returns the letter wired to c, or c itself when unplugged.
func (p Plugboard) Apply(c rune) rune {
	if out, ok := p[c]; ok {
		return out
	}
	return c
}

// DuplicateLetters lists letters that appear in more than one valid pair, in
// order of their second appearance. The plugboard still accepts such pairs.
func DuplicateLetters(pairs []string) []rune {
	seen := make(map[rune]bool)
	var dups []rune
	for _, pair := range pairs {
		a, b, ok := splitPair(pair)
		if !ok {
			continue
		}
		letters := []rune{a, b}
		if a == b {
			letters = letters[:1]
		}
		for _, c := range letters {
			if seen[c] {
				dups = append(dups, c)
			}
			seen[c] = true
		}
	}
	return dups
}

func splitPair(pair string) (a, b rune, ok bool) {
	r := []rune(pair)
	if len(r) != 2 || !IsLetter(r[0]) || !IsLetter(r[1]) {
		return 0, 0, false
	}
	return r[0], r[1], true
}
