// Package store provides file-based persistence for key sheets.
//
// Key sheets are named machine settings (rotor order, start positions and
// plugboard pairs). All sheets live in a single JSON document sealed with
// ChaCha20-Poly1305 under a scrypt-derived key, written atomically under the
// user's configured home directory. Live rotor offsets are never stored.
// All methods are concurrency-safe via internal locking.
package store
