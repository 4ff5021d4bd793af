package interfaces

import domaintypes "enigma/internal/domain/types"

// KeySheetStore persists named machine settings behind a passphrase.
type KeySheetStore interface {
	SaveKeySheet(passphrase string, sheet domaintypes.KeySheet) error
	LoadKeySheet(passphrase, name string) (domaintypes.KeySheet, bool, error)
	ListKeySheets(passphrase string) ([]domaintypes.KeySheet, error)
	DeleteKeySheet(passphrase, name string) (bool, error)
}
