package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// requirePassphrase returns --passphrase, prompting on the terminal when it
// was not given.
func requirePassphrase(cmd *cobra.Command) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("passphrase required (-p)")
	}
	fd := int(f.Fd())
	fmt.Fprint(cmd.ErrOrStderr(), "Passphrase: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("passphrase required (-p)")
	}
	passphrase = string(b)
	return passphrase, nil
}
