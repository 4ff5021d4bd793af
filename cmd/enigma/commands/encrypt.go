package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"enigma/internal/crypto"
)

// encrypt [message...]: run a message through the machine.
func encryptCmd() *cobra.Command {
	var (
		flags     settingsFlags
		text      string
		file      string
		sheetName string
	)
	cmd := &cobra.Command{
		Use:     "encrypt [message...]",
		Aliases: []string{"decrypt"},
		Short:   "Encrypt or decrypt a message",
		Long: `Encrypt a message with the configured machine. Running the ciphertext
through the same settings decrypts it.

The message is read from the arguments, --text, --file or stdin, in that
order. It is uppercased and every character other than A-Z is dropped.

Settings come from, in increasing priority: built-in defaults (I II III, AAA,
no plugs), the defaults file, --sheet, then --rotors/--positions/--plugboard.`,
		Example: `  enigma encrypt --rotors I,II,III --positions AAA --plugboard "AB CD" "Hello world"
  enigma decrypt -p secret --sheet monday XQMHW`,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := readMessage(cmd, args, text, file)
			if err != nil {
				return err
			}

			base := appCtx.Defaults
			if sheetName != "" {
				pass, err := requirePassphrase(cmd)
				if err != nil {
					return err
				}
				sheet, err := appCtx.KeySheets.LoadKeySheet(pass, sheetName)
				if err != nil {
					return err
				}
				base = sheet.Settings
			}
			settings := flags.apply(cmd, base)
			logger.Printf("settings fingerprint %s", crypto.Fingerprint(settings))

			res, err := appCtx.Machine.Encrypt(settings, message)
			if err != nil {
				return fmt.Errorf("encrypt: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&text, "text", "t", "", "message text")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the message from a file")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "use a stored key sheet")
	return cmd
}

func readMessage(cmd *cobra.Command, args []string, text, file string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case text != "":
		return text, nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(b), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if stat, err := f.Stat(); err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("no message: pass it as an argument, --text, --file or stdin")
		}
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
