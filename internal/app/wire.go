package app

import (
	"fmt"
	"os"

	keysheetsvc "enigma/internal/services/keysheet"
	machinesvc "enigma/internal/services/machine"
	"enigma/internal/store"
)

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	if cfg.Home == "" {
		return nil, fmt.Errorf("home directory required")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	sheetStore := store.NewKeySheetFileStore(cfg.Home)

	return &App{
		KeySheets: keysheetsvc.New(sheetStore),
		Machine:   machinesvc.New(cfg.Logger),
		Defaults:  cfg.Defaults.Clone(),
	}, nil
}
