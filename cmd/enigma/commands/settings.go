package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"enigma/internal/domain"
)

// settingsFlags are the machine settings a command accepts on its command line.
type settingsFlags struct {
	rotors    []string
	positions string
	plugboard string
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.rotors, "rotors", nil, "rotor order, left to right (e.g. I,II,III)")
	cmd.Flags().StringVar(&f.positions, "positions", "", "start letters, left to right (e.g. AAA)")
	cmd.Flags().StringVar(&f.plugboard, "plugboard", "", "plugboard pairs (e.g. 'AB CD EF')")
}

// apply overrides base with every flag the user set and normalises the result.
func (f *settingsFlags) apply(cmd *cobra.Command, base domain.Settings) domain.Settings {
	s := base.Clone()
	if cmd.Flags().Changed("rotors") {
		s.Rotors = nil
		for _, r := range f.rotors {
			s.Rotors = append(s.Rotors, strings.Fields(r)...)
		}
	}
	if cmd.Flags().Changed("positions") {
		s.Positions = f.positions
	}
	if cmd.Flags().Changed("plugboard") {
		s.Plugboard = domain.ParsePlugboard(f.plugboard)
	}
	return domain.NormalizeSettings(s)
}
