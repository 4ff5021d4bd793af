package main

import (
	"os"

	"enigma/cmd/enigma/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
