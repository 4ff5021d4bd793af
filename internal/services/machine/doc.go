// Package machine runs messages through a freshly configured cipher machine.
//
// Every call builds a new engine from the given settings and resets it to its
// start positions before encrypting, so encrypting the ciphertext again with
// the same settings returns the plaintext.
package machine
