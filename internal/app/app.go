package app

import "enigma/internal/domain"

// App bundles the services and defaults the commands use.
type App struct {
	KeySheets domain.KeySheetService
	Machine   domain.MachineService
	Defaults  domain.Settings
}
