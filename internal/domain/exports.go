package domain

import (
	interfaces "enigma/internal/domain/interfaces"
	types "enigma/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	RotorType = types.RotorType
	Settings  = types.Settings
	KeySheet  = types.KeySheet
	Result    = types.Result
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeySheetStore   = interfaces.KeySheetStore
	KeySheetService = interfaces.KeySheetService
	MachineService  = interfaces.MachineService
)

const (
	RotorCount = types.RotorCount

	RotorI   = types.RotorI
	RotorII  = types.RotorII
	RotorIII = types.RotorIII
)

var (
	ErrUnknownRotorType = types.ErrUnknownRotorType
	ErrInvalidPosition  = types.ErrInvalidPosition
	ErrRotorCount       = types.ErrRotorCount
	ErrKeySheetNotFound = types.ErrKeySheetNotFound
	ErrWrongPassphrase  = types.ErrWrongPassphrase
)

// Function re-exports.
var (
	RotorTypes        = types.RotorTypes
	ParseRotorType    = types.ParseRotorType
	ParseRotorOrder   = types.ParseRotorOrder
	DefaultSettings   = types.DefaultSettings
	NormalizeSettings = types.NormalizeSettings
	ParsePlugboard    = types.ParsePlugboard
)
