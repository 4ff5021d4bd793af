package enigma

// reflectorB is the UKW-B reflector wiring. It pairs every letter with a
// different one, so reflecting twice is the identity.
const reflectorB = "YRUHQSLDPXNGOKMIEBFZCWVJAT"

// Reflect turns the signal around at the left end of the rotor stack.
func Reflect(c rune) rune { return rune(reflectorB[ToIndex(c)]) }

// ReflectorWiring returns the reflector table, A first.
func ReflectorWiring() string { return reflectorB }
