package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"enigma/internal/domain"
	"enigma/internal/protocol/enigma"
)

func rotorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotors",
		Short: "List rotor wirings, notches and the reflector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ROTOR\tWIRING\tNOTCH")
			for _, t := range domain.RotorTypes() {
				r, err := enigma.NewRotor(t)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%c\n", t, r.Wiring(), r.Notch())
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", "UKW-B", enigma.ReflectorWiring(), "-")
			return w.Flush()
		},
	}
}
