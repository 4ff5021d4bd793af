package app

import (
	"log"

	"enigma/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string          // key-sheet directory, e.g. $HOME/.enigma
	Defaults domain.Settings // settings used when neither flags nor a sheet supply them
	Logger   *log.Logger     // optional; nil discards
}
