// Package enigma implements a three-rotor cipher machine.
//
// # Signal path
//
// For every letter the machine first steps its rotors, then sends the signal
// through:
//  1. the plugboard,
//  2. the rotors right to left (Forward),
//  3. the reflector,
//  4. the rotors left to right (Backward),
//  5. the plugboard again.
//
// Because the reflector is self-inverse and each rotor's Backward undoes its
// Forward, two machines built from the same Settings turn ciphertext back into
// plaintext. A single Engine can do the same after Reset.
//
// # Stepping
//
// The right rotor advances on every letter. When it steps onto its notch letter
// the middle rotor advances. Whenever the middle rotor's current letter is its
// notch, the left rotor advances. The historical double step of the middle
// rotor is not modelled, so while the middle rotor rests on its notch the left
// rotor moves with every key press.
//
// # Concurrency
//
// An Engine owns its rotor offsets and is not safe for concurrent use.
// Encrypt independent messages with independent engines.
package enigma
