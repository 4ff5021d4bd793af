package types

import "errors"

var (
	// ErrUnknownRotorType is returned when a rotor name is not one of the known wirings.
	ErrUnknownRotorType = errors.New("unknown rotor type")
	// ErrInvalidPosition is returned when a start position is not a letter A-Z.
	ErrInvalidPosition = errors.New("invalid rotor position")
	// ErrRotorCount is returned when a rotor order or position list does not name exactly three rotors.
	ErrRotorCount = errors.New("exactly three rotors required")
	// ErrKeySheetNotFound is returned when no key sheet is stored under a name.
	ErrKeySheetNotFound = errors.New("key sheet not found")
	// ErrWrongPassphrase is returned when the key-sheet book cannot be opened.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key sheets")
)
