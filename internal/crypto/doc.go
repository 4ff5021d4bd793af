// Package crypto exposes the small helpers the CLI needs around the cipher
// machine itself.
//
// Contents
//
//   - Short settings fingerprints operators can read aloud to confirm they
//     hold the same key sheet (Fingerprint)
//   - Best-effort memory wiping for passphrases and sealed plaintext (Wipe)
//
// # Notes
//
// Fingerprint is a checksum, not a commitment: it uses xxhash and must never
// be treated as hiding the settings it was computed from.
package crypto
