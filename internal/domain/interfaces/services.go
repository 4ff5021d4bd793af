package interfaces

import domaintypes "enigma/internal/domain/types"

// KeySheetService validates and manages stored key sheets.
type KeySheetService interface {
	SaveKeySheet(passphrase, name string, settings domaintypes.Settings) (domaintypes.KeySheet, error)
	LoadKeySheet(passphrase, name string) (domaintypes.KeySheet, error)
	ListKeySheets(passphrase string) ([]domaintypes.KeySheet, error)
	DeleteKeySheet(passphrase, name string) error
}

// MachineService runs messages through a freshly configured machine.
type MachineService interface {
	Encrypt(settings domaintypes.Settings, message string) (domaintypes.Result, error)
}
